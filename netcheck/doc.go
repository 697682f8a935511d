// SPDX-License-Identifier: GPL-3.0-or-later

// Package netcheck contains IP, email, and URL validators.
//
// The syntactic validators ([IPIsValidIPAddress], [EmailIsValid], etc.) are
// pure. The reachability validators ([URLIsReachable], [URLIsNotReachable],
// and [URLWithHTTPResponseStatusCode]) use a [*ProbeFunc], which resolves the
// host with a [*ResolveFunc] (the system resolver by default, or DNS over
// udp, tcp, dot, or doh), connects to each address in turn until one
// answers, performs the TLS handshake when needed, and sends a single GET.
// Each stage emits structured span events through the configured logger.
//
// There are no retries: once every address fails, the URL is unreachable.
package netcheck
