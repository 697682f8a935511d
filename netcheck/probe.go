// SPDX-License-Identifier: GPL-3.0-or-later

package netcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"net/url"
	"strconv"

	"github.com/bassosimone/argcheck"
)

// ErrUnsupportedScheme indicates a URL whose scheme is neither http nor https.
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// NewProbeFunc returns a new [*ProbeFunc].
func NewProbeFunc(cfg *argcheck.Config, logger argcheck.SLogger) *ProbeFunc {
	return &ProbeFunc{
		cfg:     cfg,
		logger:  logger,
		Resolve: NewResolveFunc(cfg, logger),
	}
}

// ProbeFunc fetches a URL with a single GET and returns the status code.
//
// The pipeline is: resolve the host, connect to each address in turn until
// one succeeds, perform the TLS handshake for https, then send the request
// over HTTP/2 or HTTP/1.1 depending on ALPN. Redirects are not followed.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type ProbeFunc struct {
	cfg    *argcheck.Config
	logger argcheck.SLogger

	// Resolve maps the URL host to addresses.
	//
	// Set by [NewProbeFunc] to a [*ResolveFunc].
	Resolve argcheck.Func[string, []netip.Addr]
}

var _ argcheck.Func[string, int] = &ProbeFunc{}

// Call fetches rawURL and returns the response status code.
func (op *ProbeFunc) Call(ctx context.Context, rawURL string) (int, error) {
	URL, err := url.Parse(rawURL)
	if err != nil {
		return 0, err
	}
	var defaultPort uint16
	switch URL.Scheme {
	case "http":
		defaultPort = 80
	case "https":
		defaultPort = 443
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedScheme, URL.Scheme)
	}
	port, err := parsePort(URL.Port(), defaultPort)
	if err != nil {
		return 0, err
	}

	addrs, err := op.Resolve.Call(ctx, URL.Hostname())
	if err != nil {
		return 0, err
	}
	if len(addrs) <= 0 {
		return 0, fmt.Errorf("no addresses for %q", URL.Hostname())
	}

	hc, err := op.dialEach(ctx, URL, addrs, port)
	if err != nil {
		return 0, err
	}
	defer hc.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL.String(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := hc.RoundTrip(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
	return resp.StatusCode, nil
}

// maxBodySize bounds how much of the response body we drain.
const maxBodySize = 1 << 20

// dialEach tries addrs in order and returns the first connection that
// completes the handshakes, or the last error.
func (op *ProbeFunc) dialEach(ctx context.Context, URL *url.URL, addrs []netip.Addr, port uint16) (*HTTPConn, error) {
	var err error
	for _, addr := range addrs {
		var hc *HTTPConn
		if hc, err = op.dial(ctx, URL, netip.AddrPortFrom(addr, port)); err == nil {
			return hc, nil
		}
		if ctx.Err() != nil {
			break
		}
	}
	return nil, err
}

func (op *ProbeFunc) dial(ctx context.Context, URL *url.URL, endpoint netip.AddrPort) (*HTTPConn, error) {
	conn, err := NewConnectFunc(op.cfg, "tcp", op.logger).Call(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if URL.Scheme == "http" {
		return NewHTTPConnFunc(op.cfg, op.logger).Call(ctx, conn)
	}
	nextProtos := []string{"h2", "http/1.1"}
	tlsConn, err := NewTLSHandshakeFunc(op.cfg, URL.Hostname(), nextProtos, op.logger).Call(ctx, conn)
	if err != nil {
		return nil, err
	}
	return NewHTTPConnFunc(op.cfg, op.logger).Call(ctx, tlsConn)
}

// parsePort parses a URL port, returning defaultPort when it is empty.
func parsePort(port string, defaultPort uint16) (uint16, error) {
	if port == "" {
		return defaultPort, nil
	}
	value, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", port, err)
	}
	return uint16(value), nil
}
