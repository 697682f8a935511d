// SPDX-License-Identifier: GPL-3.0-or-later

package netcheck

import "github.com/bassosimone/argcheck"

// Register adds every validator in this package to reg.
//
// The network validators build a [*ProbeFunc] from the [*argcheck.Config]
// and logger passed to [argcheck.Entry.New].
func Register(reg *argcheck.Registry) error {
	return reg.Register(
		argcheck.CheckEntry("value is an IPv4 or IPv6 address", IPIsValidIPAddress()),
		argcheck.CheckEntry("value is an IPv4 address", IPIsValidIPv4Address()),
		argcheck.CheckEntry("value is an IPv6 address", IPIsValidIPv6Address()),
		argcheck.CheckEntry("value is an email address", EmailIsValid()),
		argcheck.CheckEntry("value is an absolute URL", URLIsValid()),
		argcheck.Entry{
			Name: "url-is-reachable",
			Help: "GET succeeds with status below 400",
			New: func(cfg *argcheck.Config, logger argcheck.SLogger, _ []string) (argcheck.Action, error) {
				return argcheck.AsAction(argcheck.NewCheck(cfg, URLIsReachable(NewProbeFunc(cfg, logger)), logger))
			},
		},
		argcheck.Entry{
			Name: "url-is-not-reachable",
			Help: "GET fails or status is 400 or above",
			New: func(cfg *argcheck.Config, logger argcheck.SLogger, _ []string) (argcheck.Action, error) {
				return argcheck.AsAction(argcheck.NewCheck(cfg, URLIsNotReachable(NewProbeFunc(cfg, logger)), logger))
			},
		},
		argcheck.Entry{
			Name: "url-status-code",
			Help: "GET status code is one of the --allow values",
			New: func(cfg *argcheck.Config, logger argcheck.SLogger, allowed []string) (argcheck.Action, error) {
				desc := URLWithHTTPResponseStatusCode(NewProbeFunc(cfg, logger))
				return argcheck.AsAction(argcheck.NewAllowListCheck(cfg, desc, allowed, logger))
			},
		},
	)
}
