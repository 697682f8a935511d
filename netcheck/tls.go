//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/rbmk-project/rbmk/blob/v0.17.0/pkg/x/netcore/tlsdialer.go
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.1/internal/measurexlite/tls.go
//

package netcheck

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net"
	"time"

	"github.com/bassosimone/argcheck"
	"github.com/bassosimone/runtimex"
	"github.com/bassosimone/safeconn"
)

// TLSEngine is the engine to create a new [TLSConn].
type TLSEngine interface {
	// Client builds a new client [TLSConn].
	Client(conn net.Conn, config *tls.Config) TLSConn

	// Name returns the engine name.
	Name() string

	// Parrot returns the configured parrot or an empty string.
	Parrot() string
}

// TLSEngineStdlib implements [TLSEngine] using [tls.Client].
//
// The zero value is ready to use.
type TLSEngineStdlib struct{}

var _ TLSEngine = TLSEngineStdlib{}

// Client implements [TLSEngine].
func (TLSEngineStdlib) Client(conn net.Conn, config *tls.Config) TLSConn {
	return tls.Client(conn, config)
}

// Name implements [TLSEngine].
func (TLSEngineStdlib) Name() string {
	return "stdlib"
}

// Parrot implements [TLSEngine].
func (TLSEngineStdlib) Parrot() string {
	return ""
}

// TLSConn abstracts over [*tls.Conn].
type TLSConn interface {
	ConnectionState() tls.ConnectionState
	HandshakeContext(ctx context.Context) error
	net.Conn
}

// NewTLSHandshakeFunc returns a new [*TLSHandshakeFunc].
//
// The serverName argument is used for SNI and certificate verification.
//
// The nextProtos argument contains the ALPN protocols to offer.
func NewTLSHandshakeFunc(
	cfg *argcheck.Config, serverName string, nextProtos []string, logger argcheck.SLogger) *TLSHandshakeFunc {
	runtimex.Assert(serverName != "")
	return &TLSHandshakeFunc{
		Config: &tls.Config{
			NextProtos: nextProtos,
			RootCAs:    cfg.RootCAs,
			ServerName: serverName,
		},
		Engine:        TLSEngineStdlib{},
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// TLSHandshakeFunc performs a TLS handshake over an existing [net.Conn].
//
// Returns either a valid [TLSConn] or an error, never both. On failure
// the input connection is closed.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type TLSHandshakeFunc struct {
	// Config is the [*tls.Config] to use. It is cloned before each handshake.
	//
	// Set by [NewTLSHandshakeFunc].
	Config *tls.Config

	// Engine is the [TLSEngine] to use.
	//
	// Set by [NewTLSHandshakeFunc] to [TLSEngineStdlib].
	Engine TLSEngine

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewTLSHandshakeFunc] from [argcheck.Config.ErrClassifier].
	ErrClassifier argcheck.ErrClassifier

	// Logger is the [argcheck.SLogger] to use.
	//
	// Set by [NewTLSHandshakeFunc] to the user-provided logger.
	Logger argcheck.SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewTLSHandshakeFunc] from [argcheck.Config.TimeNow].
	TimeNow func() time.Time
}

var _ argcheck.Func[net.Conn, TLSConn] = &TLSHandshakeFunc{}

// Call performs the handshake over conn.
func (op *TLSHandshakeFunc) Call(ctx context.Context, conn net.Conn) (TLSConn, error) {
	runtimex.Assert(op.Config != nil)
	config := op.Config.Clone()
	config.Time = op.TimeNow

	tconn := op.Engine.Client(conn, config)
	t0 := op.TimeNow()
	deadline, _ := ctx.Deadline()
	op.Logger.Info(
		"tlsHandshakeStart",
		slog.Time("deadline", deadline),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("remoteAddr", safeconn.RemoteAddr(conn)),
		slog.Time("t", t0),
		slog.String("tlsEngineName", op.Engine.Name()),
		slog.String("tlsParrot", op.Engine.Parrot()),
		slog.Any("tlsOfferedProtocols", config.NextProtos),
		slog.String("tlsServerName", config.ServerName),
	)

	err := tconn.HandshakeContext(ctx)
	state := tconn.ConnectionState()

	op.Logger.Info(
		"tlsHandshakeDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("remoteAddr", safeconn.RemoteAddr(conn)),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
		slog.String("tlsCipherSuite", tls.CipherSuiteName(state.CipherSuite)),
		slog.String("tlsEngineName", op.Engine.Name()),
		slog.String("tlsNegotiatedProtocol", state.NegotiatedProtocol),
		slog.Int("tlsPeerCertsCount", len(state.PeerCertificates)),
		slog.String("tlsServerName", config.ServerName),
		slog.String("tlsVersion", tls.VersionName(state.Version)),
	)

	if err != nil {
		tconn.Close()
		return nil, err
	}
	return tconn, nil
}
