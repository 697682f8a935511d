// SPDX-License-Identifier: GPL-3.0-or-later

package netcheck

import "github.com/go-playground/validator/v10"

// validate is safe for concurrent use and caches parsed tags.
var validate = validator.New(validator.WithRequiredStructEnabled())

func matchesTag(value, tag string) bool {
	return validate.Var(value, "required,"+tag) == nil
}

// IsValidIPAddress returns whether value is an IPv4 or IPv6 address.
func IsValidIPAddress(value string) bool {
	return matchesTag(value, "ip")
}

// IsValidIPv4Address returns whether value is an IPv4 address.
func IsValidIPv4Address(value string) bool {
	return matchesTag(value, "ipv4")
}

// IsValidIPv6Address returns whether value is an IPv6 address.
func IsValidIPv6Address(value string) bool {
	return matchesTag(value, "ipv6")
}

// IsValidEmail returns whether value is an email address.
func IsValidEmail(value string) bool {
	return matchesTag(value, "email")
}

// IsValidURL returns whether value is an absolute URL.
func IsValidURL(value string) bool {
	return matchesTag(value, "url")
}
