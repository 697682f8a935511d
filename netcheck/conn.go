//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.1/internal/netxlite/dialer.go
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.1/internal/measurexlite/conn.go
//

package netcheck

import (
	"context"
	"log/slog"
	"net"
	"net/netip"
	"sync"
	"time"

	"github.com/bassosimone/argcheck"
	"github.com/bassosimone/safeconn"
)

// NewConnectFunc returns a new [*ConnectFunc].
//
// The network argument must be either "tcp" or "udp".
func NewConnectFunc(cfg *argcheck.Config, network string, logger argcheck.SLogger) *ConnectFunc {
	return &ConnectFunc{
		Dialer:        cfg.Dialer,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		Network:       network,
		TimeNow:       cfg.TimeNow,
	}
}

// ConnectFunc dials a [netip.AddrPort] and returns a connection that is
// closed as soon as the context is done.
//
// Closing the returned connection logs closeStart/closeDone events and
// releases the context watcher.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type ConnectFunc struct {
	// Dialer is the [argcheck.Dialer] to use.
	//
	// Set by [NewConnectFunc] from [argcheck.Config.Dialer].
	Dialer argcheck.Dialer

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConnectFunc] from [argcheck.Config.ErrClassifier].
	ErrClassifier argcheck.ErrClassifier

	// Logger is the [argcheck.SLogger] to use.
	//
	// Set by [NewConnectFunc] to the user-provided logger.
	Logger argcheck.SLogger

	// Network is either "tcp" or "udp".
	//
	// Set by [NewConnectFunc] to the user-provided value.
	Network string

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewConnectFunc] from [argcheck.Config.TimeNow].
	TimeNow func() time.Time
}

var _ argcheck.Func[netip.AddrPort, net.Conn] = &ConnectFunc{}

// Call dials address and returns either a valid [net.Conn] or an error.
func (op *ConnectFunc) Call(ctx context.Context, address netip.AddrPort) (net.Conn, error) {
	t0 := op.TimeNow()
	deadline, _ := ctx.Deadline()
	op.Logger.Info(
		"connectStart",
		slog.Time("deadline", deadline),
		slog.String("protocol", op.Network),
		slog.String("remoteAddr", address.String()),
		slog.Time("t", t0),
	)

	conn, err := op.Dialer.DialContext(ctx, op.Network, address.String())

	op.Logger.Info(
		"connectDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("protocol", op.Network),
		slog.String("remoteAddr", address.String()),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)

	if err != nil {
		return nil, err
	}
	return op.watch(ctx, conn), nil
}

func (op *ConnectFunc) watch(ctx context.Context, conn net.Conn) net.Conn {
	wc := &watchedConn{
		Conn:     conn,
		laddr:    safeconn.LocalAddr(conn),
		op:       op,
		protocol: safeconn.Network(conn),
		raddr:    safeconn.RemoteAddr(conn),
	}
	wc.stop = context.AfterFunc(ctx, func() {
		conn.Close()
	})
	return wc
}

// watchedConn is a [net.Conn] closed when its context is done.
type watchedConn struct {
	net.Conn
	closeonce sync.Once
	laddr     string
	op        *ConnectFunc
	protocol  string
	raddr     string
	stop      func() bool
}

// Close implements [net.Conn].
//
// Subsequent calls return [net.ErrClosed].
func (c *watchedConn) Close() (err error) {
	err = net.ErrClosed
	c.closeonce.Do(func() {
		c.stop()

		t0 := c.op.TimeNow()
		c.op.Logger.Info(
			"closeStart",
			slog.String("localAddr", c.laddr),
			slog.String("protocol", c.protocol),
			slog.String("remoteAddr", c.raddr),
			slog.Time("t", t0),
		)

		err = c.Conn.Close()

		c.op.Logger.Info(
			"closeDone",
			slog.Any("err", err),
			slog.String("errClass", c.op.ErrClassifier.Classify(err)),
			slog.String("localAddr", c.laddr),
			slog.String("protocol", c.protocol),
			slog.String("remoteAddr", c.raddr),
			slog.Time("t0", t0),
			slog.Time("t", c.op.TimeNow()),
		)
	})
	return
}

// Read implements [net.Conn].
func (c *watchedConn) Read(buf []byte) (int, error) {
	count, err := c.Conn.Read(buf)
	c.op.Logger.Debug(
		"read",
		slog.Int("ioBufferSize", len(buf)),
		slog.Int("ioBytesCount", count),
		slog.Any("err", err),
		slog.String("errClass", c.op.ErrClassifier.Classify(err)),
		slog.String("remoteAddr", c.raddr),
	)
	return count, err
}

// Write implements [net.Conn].
func (c *watchedConn) Write(data []byte) (int, error) {
	count, err := c.Conn.Write(data)
	c.op.Logger.Debug(
		"write",
		slog.Int("ioBufferSize", len(data)),
		slog.Int("ioBytesCount", count),
		slog.Any("err", err),
		slog.String("errClass", c.op.ErrClassifier.Classify(err)),
		slog.String("remoteAddr", c.raddr),
	)
	return count, err
}
