// SPDX-License-Identifier: GPL-3.0-or-later

package netcheck

import (
	"context"
	"strconv"

	"github.com/bassosimone/argcheck"
)

func newCheck(name string, fn argcheck.Func[string, bool], noun, failure string) argcheck.Descriptor[bool] {
	return argcheck.Descriptor[bool]{
		Name:     name,
		Func:     fn,
		Singular: noun + " " + failure,
		Plural:   "at least one " + noun + " " + failure,
	}
}

// IPIsValidIPAddress accepts IPv4 and IPv6 addresses.
func IPIsValidIPAddress() argcheck.Descriptor[bool] {
	return newCheck("ip-is-valid", argcheck.PureFunc(IsValidIPAddress), "IP address", "is not valid")
}

// IPIsValidIPv4Address accepts IPv4 addresses.
func IPIsValidIPv4Address() argcheck.Descriptor[bool] {
	return newCheck("ipv4-is-valid", argcheck.PureFunc(IsValidIPv4Address), "IPv4 address", "is not valid")
}

// IPIsValidIPv6Address accepts IPv6 addresses.
func IPIsValidIPv6Address() argcheck.Descriptor[bool] {
	return newCheck("ipv6-is-valid", argcheck.PureFunc(IsValidIPv6Address), "IPv6 address", "is not valid")
}

// EmailIsValid accepts email addresses.
func EmailIsValid() argcheck.Descriptor[bool] {
	return newCheck("email-is-valid", argcheck.PureFunc(IsValidEmail), "email address", "is not valid")
}

// URLIsValid accepts syntactically valid absolute URLs.
func URLIsValid() argcheck.Descriptor[bool] {
	return newCheck("url-is-valid", argcheck.PureFunc(IsValidURL), "URL", "is not valid")
}

// URLIsReachable accepts URLs whose GET succeeds with a status below 400.
//
// A network failure rejects the URL and is carried as the cause of
// the resulting [*argcheck.ValidationError].
func URLIsReachable(probe argcheck.Func[string, int]) argcheck.Descriptor[bool] {
	fn := argcheck.FuncAdapter[string, bool](func(ctx context.Context, rawURL string) (bool, error) {
		status, err := probe.Call(ctx, rawURL)
		if err != nil {
			return false, err
		}
		return status < 400, nil
	})
	return newCheck("url-is-reachable", fn, "URL", "is not reachable")
}

// URLIsNotReachable accepts URLs whose GET fails or returns a status of
// 400 or above. A network failure counts as unreachable.
func URLIsNotReachable(probe argcheck.Func[string, int]) argcheck.Descriptor[bool] {
	fn := argcheck.FuncAdapter[string, bool](func(ctx context.Context, rawURL string) (bool, error) {
		status, err := probe.Call(ctx, rawURL)
		return err != nil || status >= 400, nil
	})
	return newCheck("url-is-not-reachable", fn, "URL", "is reachable")
}

// URLWithHTTPResponseStatusCode maps a URL to the decimal status code of
// its GET response, for use with [argcheck.NewAllowListCheck].
func URLWithHTTPResponseStatusCode(probe argcheck.Func[string, int]) argcheck.Descriptor[string] {
	return argcheck.Descriptor[string]{
		Name:     "url-status-code",
		Func:     argcheck.Compose2(probe, argcheck.PureFunc(strconv.Itoa)),
		Singular: "URL returned a status code not in the allow-list",
		Plural:   "at least one URL returned a status code not in the allow-list",
	}
}
