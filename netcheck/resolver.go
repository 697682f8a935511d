// SPDX-License-Identifier: GPL-3.0-or-later

package netcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"time"

	"github.com/bassosimone/argcheck"
	"github.com/bassosimone/dnscodec"
	"github.com/bassosimone/dnsoverhttps"
	"github.com/bassosimone/dnsoverstream"
	"github.com/bassosimone/minest"
	"github.com/bassosimone/safeconn"
	"github.com/miekg/dns"
)

// ErrUnsupportedDNSProtocol indicates an unknown [argcheck.Config.DNSProtocol].
var ErrUnsupportedDNSProtocol = errors.New("unsupported DNS protocol")

// NewResolveFunc returns a new [*ResolveFunc] using the DNS protocol,
// server, and resolver configured in cfg.
func NewResolveFunc(cfg *argcheck.Config, logger argcheck.SLogger) *ResolveFunc {
	return &ResolveFunc{
		cfg:           cfg,
		Protocol:      cfg.DNSProtocol,
		Resolver:      cfg.Resolver,
		Server:        cfg.DNSServer,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// ResolveFunc resolves a host name to IPv4 and IPv6 addresses.
//
// IP address literals are returned as is, without any lookup. With the
// "system" protocol the lookup goes through [ResolveFunc.Resolver], which
// honors the hosts file and search domains. Otherwise A and AAAA queries
// are sent to [ResolveFunc.Server], each using a fresh connection closed
// before returning. IPv4 addresses come first.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type ResolveFunc struct {
	cfg *argcheck.Config

	// Protocol is one of "system", "udp", "tcp", "dot", or "doh".
	//
	// Set by [NewResolveFunc] from [argcheck.Config.DNSProtocol].
	Protocol string

	// Resolver performs "system" lookups.
	//
	// Set by [NewResolveFunc] from [argcheck.Config.Resolver].
	Resolver argcheck.Resolver

	// Server is "IP:port" for udp, tcp, and dot, and an https URL
	// whose host is an IP address for doh.
	//
	// Set by [NewResolveFunc] from [argcheck.Config.DNSServer].
	Server string

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewResolveFunc] from [argcheck.Config.ErrClassifier].
	ErrClassifier argcheck.ErrClassifier

	// Logger is the [argcheck.SLogger] to use.
	//
	// Set by [NewResolveFunc] to the user-provided logger.
	Logger argcheck.SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewResolveFunc] from [argcheck.Config.TimeNow].
	TimeNow func() time.Time
}

var _ argcheck.Func[string, []netip.Addr] = &ResolveFunc{}

// Call resolves host.
func (op *ResolveFunc) Call(ctx context.Context, host string) ([]netip.Addr, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		return []netip.Addr{addr}, nil
	}
	if op.Protocol == "system" {
		return op.lookupSystem(ctx, host)
	}
	var (
		addrs []netip.Addr
		errs  []error
	)
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		found, err := op.lookup(ctx, host, qtype)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		addrs = append(addrs, found...)
	}
	if len(addrs) <= 0 {
		return nil, errs[0]
	}
	return addrs, nil
}

func (op *ResolveFunc) lookupSystem(ctx context.Context, host string) ([]netip.Addr, error) {
	t0 := op.TimeNow()
	op.Logger.Info(
		"dnsLookupStart",
		slog.String("dnsLookupDomain", host),
		slog.String("serverProtocol", op.Protocol),
		slog.Time("t", t0),
	)
	addrs, err := op.Resolver.LookupNetIP(ctx, "ip", host)
	for idx, addr := range addrs {
		addrs[idx] = addr.Unmap()
	}
	op.Logger.Info(
		"dnsLookupDone",
		slog.Any("dnsResolvedAddrs", addrs),
		slog.String("dnsLookupDomain", host),
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.String("serverProtocol", op.Protocol),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
	if err != nil {
		return nil, err
	}
	return addrs, nil
}

func (op *ResolveFunc) lookup(ctx context.Context, host string, qtype uint16) ([]netip.Addr, error) {
	resp, err := op.exchange(ctx, dnscodec.NewQuery(host, qtype))
	if err != nil {
		return nil, err
	}
	var records []string
	switch qtype {
	case dns.TypeAAAA:
		records, err = resp.RecordsAAAA()
	default:
		records, err = resp.RecordsA()
	}
	if err != nil {
		return nil, err
	}
	addrs := make([]netip.Addr, 0, len(records))
	for _, record := range records {
		addr, err := netip.ParseAddr(record)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

func (op *ResolveFunc) exchange(ctx context.Context, query *dnscodec.Query) (*dnscodec.Response, error) {
	switch op.Protocol {
	case "udp":
		return op.exchangeUDP(ctx, query)
	case "tcp":
		return op.exchangeStream(ctx, query, false)
	case "dot":
		return op.exchangeStream(ctx, query, true)
	case "doh":
		return op.exchangeHTTPS(ctx, query)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDNSProtocol, op.Protocol)
	}
}

func (op *ResolveFunc) exchangeUDP(ctx context.Context, query *dnscodec.Query) (*dnscodec.Response, error) {
	server, err := netip.ParseAddrPort(op.Server)
	if err != nil {
		return nil, err
	}
	conn, err := NewConnectFunc(op.cfg, "udp", op.Logger).Call(ctx, server)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	lc := op.newLogContext(conn)
	txp := minest.NewDNSOverUDPTransport(unusedDialer{}, server)
	txp.ObserveRawQuery = lc.observeQuery
	txp.ObserveRawResponse = lc.observeResponse

	lc.logStart(ctx)
	resp, err := txp.ExchangeWithConn(ctx, conn, query)
	lc.logDone(ctx, err)
	return resp, err
}

func (op *ResolveFunc) exchangeStream(
	ctx context.Context, query *dnscodec.Query, useTLS bool) (*dnscodec.Response, error) {
	server, err := netip.ParseAddrPort(op.Server)
	if err != nil {
		return nil, err
	}
	conn, err := NewConnectFunc(op.cfg, "tcp", op.Logger).Call(ctx, server)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	lc := op.newLogContext(conn)
	txp := dnsoverstream.NewTransport(dnsoverstream.NewStreamOpenerDialerTCP(unusedDialer{}), server)
	txp.ObserveRawQuery = lc.observeQuery
	txp.ObserveRawResponse = lc.observeResponse

	if !useTLS {
		lc.logStart(ctx)
		resp, err := txp.ExchangeWithStreamOpener(ctx, dnsoverstream.NewTCPStreamOpener(conn), query)
		lc.logDone(ctx, err)
		return resp, err
	}

	tlsConn, err := NewTLSHandshakeFunc(op.cfg, server.Addr().String(), []string{"dot"}, op.Logger).Call(ctx, conn)
	if err != nil {
		return nil, err
	}
	defer tlsConn.Close()

	lc.logStart(ctx)
	resp, err := txp.ExchangeWithStreamOpener(ctx, dnsoverstream.NewTLSStreamOpener(tlsConn), query)
	lc.logDone(ctx, err)
	return resp, err
}

func (op *ResolveFunc) exchangeHTTPS(ctx context.Context, query *dnscodec.Query) (*dnscodec.Response, error) {
	server, err := dohEndpoint(op.Server)
	if err != nil {
		return nil, err
	}
	conn, err := NewConnectFunc(op.cfg, "tcp", op.Logger).Call(ctx, server)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	nextProtos := []string{"h2", "http/1.1"}
	tlsConn, err := NewTLSHandshakeFunc(op.cfg, server.Addr().String(), nextProtos, op.Logger).Call(ctx, conn)
	if err != nil {
		return nil, err
	}
	hc, err := NewHTTPConnFunc(op.cfg, op.Logger).Call(ctx, tlsConn)
	if err != nil {
		tlsConn.Close()
		return nil, err
	}
	defer hc.Close()

	lc := op.newLogContext(conn)
	lc.logStart(ctx)
	req, queryMsg, err := dnsoverhttps.NewRequestWithHook(ctx, query, op.Server, lc.observeQuery)
	if err != nil {
		lc.logDone(ctx, err)
		return nil, err
	}
	var httpResp *http.Response
	if httpResp, err = hc.RoundTrip(req); err != nil {
		lc.logDone(ctx, err)
		return nil, err
	}
	resp, err := dnsoverhttps.ReadResponseWithHook(ctx, httpResp, queryMsg, lc.observeResponse)
	lc.logDone(ctx, err)
	return resp, err
}

// dohEndpoint returns the endpoint of an https URL whose host is an IP address.
func dohEndpoint(rawURL string) (netip.AddrPort, error) {
	URL, err := url.Parse(rawURL)
	if err != nil {
		return netip.AddrPort{}, err
	}
	if URL.Scheme != "https" {
		return netip.AddrPort{}, fmt.Errorf("DoH server URL must use https: %q", rawURL)
	}
	addr, err := netip.ParseAddr(URL.Hostname())
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("DoH server URL host must be an IP address: %w", err)
	}
	port, err := parsePort(URL.Port(), 443)
	if err != nil {
		return netip.AddrPort{}, err
	}
	return netip.AddrPortFrom(addr, port), nil
}

// unusedDialer is used by DNS transports exchanging over an existing
// connection, which must never dial.
type unusedDialer struct{}

func (unusedDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	panic("netcheck: DNS transport must not dial")
}

// dnsLogContext holds the logging state of a single DNS exchange.
type dnsLogContext struct {
	classifier argcheck.ErrClassifier
	laddr      string
	logger     argcheck.SLogger
	protocol   string
	raddr      string
	rawQuery   []byte
	server     string
	t0         time.Time
	timeNow    func() time.Time
}

func (op *ResolveFunc) newLogContext(conn net.Conn) *dnsLogContext {
	return &dnsLogContext{
		classifier: op.ErrClassifier,
		laddr:      safeconn.LocalAddr(conn),
		logger:     op.Logger,
		protocol:   op.Protocol,
		raddr:      safeconn.RemoteAddr(conn),
		server:     op.Server,
		timeNow:    op.TimeNow,
	}
}

func (lc *dnsLogContext) logStart(ctx context.Context) {
	lc.t0 = lc.timeNow()
	deadline, _ := ctx.Deadline()
	lc.logger.Info(
		"dnsExchangeStart",
		slog.Time("deadline", deadline),
		slog.String("localAddr", lc.laddr),
		slog.String("remoteAddr", lc.raddr),
		slog.String("serverAddr", lc.server),
		slog.String("serverProtocol", lc.protocol),
		slog.Time("t", lc.t0),
	)
}

func (lc *dnsLogContext) logDone(ctx context.Context, err error) {
	deadline, _ := ctx.Deadline()
	lc.logger.Info(
		"dnsExchangeDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", lc.classifier.Classify(err)),
		slog.String("localAddr", lc.laddr),
		slog.String("remoteAddr", lc.raddr),
		slog.String("serverAddr", lc.server),
		slog.String("serverProtocol", lc.protocol),
		slog.Time("t0", lc.t0),
		slog.Time("t", lc.timeNow()),
	)
}

func (lc *dnsLogContext) observeQuery(rawQuery []byte) {
	lc.rawQuery = rawQuery
	lc.logger.Debug(
		"dnsQuery",
		slog.Any("dnsRawQuery", rawQuery),
		slog.String("serverProtocol", lc.protocol),
		slog.Time("t", lc.timeNow()),
	)
}

func (lc *dnsLogContext) observeResponse(rawResp []byte) {
	lc.logger.Debug(
		"dnsResponse",
		slog.Any("dnsRawQuery", lc.rawQuery),
		slog.Any("dnsRawResponse", rawResp),
		slog.String("serverProtocol", lc.protocol),
		slog.Time("t", lc.timeNow()),
	)
}
