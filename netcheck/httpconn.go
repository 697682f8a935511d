//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/rbmk-project/rbmk/blob/v0.17.0/pkg/common/httpslog/httpslog.go
//

package netcheck

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bassosimone/argcheck"
	"github.com/bassosimone/safeconn"
	"github.com/bassosimone/sud"
	"golang.org/x/net/http2"
)

// HTTPConn is an HTTP transport bound to a single connection.
//
// Each round trip emits httpRoundTripStart/httpRoundTripDone events and
// closing the response body emits httpBodyDone.
//
// The caller is responsible for calling [HTTPConn.Close] when done.
//
// Construct using [NewHTTPConnFunc].
type HTTPConn struct {
	conn          net.Conn
	txp           http.RoundTripper
	closeIdleFunc func()

	// ErrClassifier classifies errors for structured logging.
	ErrClassifier argcheck.ErrClassifier

	// Logger is the [argcheck.SLogger] to use.
	Logger argcheck.SLogger

	// TimeNow is the function to get the current time.
	TimeNow func() time.Time
}

// RoundTrip implements [http.RoundTripper].
func (hc *HTTPConn) RoundTrip(req *http.Request) (*http.Response, error) {
	t0 := hc.TimeNow()
	deadline, _ := req.Context().Deadline()
	hc.Logger.Info(
		"httpRoundTripStart",
		slog.Time("deadline", deadline),
		slog.String("httpMethod", req.Method),
		slog.String("httpUrl", req.URL.String()),
		slog.String("localAddr", safeconn.LocalAddr(hc.conn)),
		slog.String("remoteAddr", safeconn.RemoteAddr(hc.conn)),
		slog.Time("t", t0),
	)

	resp, err := hc.txp.RoundTrip(req)

	var statusCode int
	if resp != nil {
		statusCode = resp.StatusCode
	}
	hc.Logger.Info(
		"httpRoundTripDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", hc.ErrClassifier.Classify(err)),
		slog.String("httpMethod", req.Method),
		slog.String("httpUrl", req.URL.String()),
		slog.Int("httpResponseStatusCode", statusCode),
		slog.String("localAddr", safeconn.LocalAddr(hc.conn)),
		slog.String("remoteAddr", safeconn.RemoteAddr(hc.conn)),
		slog.Time("t0", t0),
		slog.Time("t", hc.TimeNow()),
	)

	if err != nil {
		return nil, err
	}
	resp.Body = &loggedBody{ReadCloser: resp.Body, hc: hc, t0: hc.TimeNow()}
	return resp, nil
}

// Close closes the transport and the underlying connection.
func (hc *HTTPConn) Close() error {
	hc.closeIdleFunc()
	return hc.conn.Close()
}

// Conn returns the underlying [net.Conn].
func (hc *HTTPConn) Conn() net.Conn {
	return hc.conn
}

// loggedBody counts the body bytes and logs httpBodyDone on Close.
type loggedBody struct {
	io.ReadCloser
	count     int64
	closeonce sync.Once
	hc        *HTTPConn
	t0        time.Time
}

func (b *loggedBody) Read(buf []byte) (int, error) {
	count, err := b.ReadCloser.Read(buf)
	b.count += int64(count)
	return count, err
}

func (b *loggedBody) Close() (err error) {
	b.closeonce.Do(func() {
		err = b.ReadCloser.Close()
		b.hc.Logger.Info(
			"httpBodyDone",
			slog.Int64("ioBytesCount", b.count),
			slog.Any("err", err),
			slog.String("errClass", b.hc.ErrClassifier.Classify(err)),
			slog.String("remoteAddr", safeconn.RemoteAddr(b.hc.conn)),
			slog.Time("t0", b.t0),
			slog.Time("t", b.hc.TimeNow()),
		)
	})
	return
}

// NewHTTPConnFunc returns a new [*HTTPConnFunc].
func NewHTTPConnFunc(cfg *argcheck.Config, logger argcheck.SLogger) *HTTPConnFunc {
	return &HTTPConnFunc{
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// HTTPConnFunc wraps a connection into an [*HTTPConn].
//
// Uses HTTP/2 when the connection negotiated "h2" via ALPN and HTTP/1.1
// otherwise, including for plaintext connections.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type HTTPConnFunc struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewHTTPConnFunc] from [argcheck.Config.ErrClassifier].
	ErrClassifier argcheck.ErrClassifier

	// Logger is the [argcheck.SLogger] to use.
	//
	// Set by [NewHTTPConnFunc] to the user-provided logger.
	Logger argcheck.SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewHTTPConnFunc] from [argcheck.Config.TimeNow].
	TimeNow func() time.Time
}

var _ argcheck.Func[net.Conn, *HTTPConn] = &HTTPConnFunc{}

// Call implements [argcheck.Func].
func (op *HTTPConnFunc) Call(ctx context.Context, conn net.Conn) (*HTTPConn, error) {
	type connectionStater interface {
		ConnectionState() tls.ConnectionState
	}
	var alpn string
	if cs, ok := conn.(connectionStater); ok {
		alpn = cs.ConnectionState().NegotiatedProtocol
	}

	dialer := sud.NewSingleUseDialer(conn)

	hc := &HTTPConn{
		conn:          conn,
		ErrClassifier: op.ErrClassifier,
		Logger:        op.Logger,
		TimeNow:       op.TimeNow,
	}
	switch alpn {
	case "h2":
		txp := &http2.Transport{DialTLSContext: dialer.DialTLSContext}
		hc.txp, hc.closeIdleFunc = txp, txp.CloseIdleConnections
	default:
		txp := &http.Transport{
			DialContext:       dialer.DialContext,
			DialTLSContext:    dialer.DialContext,
			DisableKeepAlives: true,
		}
		hc.txp, hc.closeIdleFunc = txp, txp.CloseIdleConnections
	}
	return hc, nil
}
