// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"context"
	"crypto/x509"
	"net"
	"net/netip"
	"time"
)

// Dialer abstracts the [*net.Dialer] behavior.
//
// Only network validators dial. By depending on an abstract implementation
// we allow for unit testing and for using alternative dialers.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Resolver abstracts the [*net.Resolver] behavior.
//
// Network validators use it when [Config.DNSProtocol] is "system".
type Resolver interface {
	LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error)
}

// Config holds common configuration for validators.
//
// Pass this to constructor functions to pre-wire dependencies.
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// DNSProtocol selects how network validators resolve host names.
	//
	// One of "system", "udp", "tcp", "dot", or "doh". The "system" protocol
	// uses [Config.Resolver] and honors the host's resolver configuration.
	//
	// Set by [NewConfig] to "system".
	DNSProtocol string

	// DNSServer is the resolver endpoint.
	//
	// An "IP:port" for udp, tcp, and dot; an https URL for doh. Unused by
	// the "system" protocol.
	//
	// Set by [NewConfig] to "8.8.8.8:53".
	DNSServer string

	// Dialer is used by network validators.
	//
	// Set by [NewConfig] to [*net.Dialer].
	Dialer Dialer

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// Resolver looks up host names for the "system" DNS protocol.
	//
	// Set by [NewConfig] to [net.DefaultResolver].
	Resolver Resolver

	// RootCAs is the certificate pool used to verify TLS peers.
	//
	// Set by [NewConfig] to nil, meaning the system pool.
	RootCAs *x509.CertPool

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		DNSProtocol:   "system",
		DNSServer:     "8.8.8.8:53",
		Dialer:        &net.Dialer{},
		ErrClassifier: DefaultErrClassifier,
		Resolver:      net.DefaultResolver,
		RootCAs:       nil,
		TimeNow:       time.Now,
	}
}
