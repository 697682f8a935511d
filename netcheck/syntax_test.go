// SPDX-License-Identifier: GPL-3.0-or-later

package netcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntaxPredicates(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// fn is the predicate under test.
		fn func(string) bool

		// valid lists values the predicate must accept.
		valid []string

		// invalid lists values the predicate must reject.
		invalid []string
	}{
		{
			name:    "IsValidIPv4Address",
			fn:      IsValidIPv4Address,
			valid:   []string{"192.168.0.2", "0.0.0.0"},
			invalid: []string{"500.168.0.1", "2001:db8:0:1", "FE80::0202:B3FF:FE1E:8329", ""},
		},

		{
			name:    "IsValidIPv6Address",
			fn:      IsValidIPv6Address,
			valid:   []string{"FE80::0202:B3FF:FE1E:8329", "2001:db8:1::ab9:C0A8:102"},
			invalid: []string{"10.168.0.1", "0.0.0.0", ""},
		},

		{
			name:  "IsValidIPAddress",
			fn:    IsValidIPAddress,
			valid: []string{"192.168.0.2", "20.0.0.120", "FE80::0202:B3FF:FE1E:8329"},
			invalid: []string{
				"500.168.0.1",
				"1000.168.0.1",
				"x122.168.0.1",
				"0.0.0.0.0.0",
				"a.168.0.2",
				"120",
				":AA:2001:db8:1::ab9:C0A8:102",
				":::FE80::02:B3:FE1E:8329",
				"",
			},
		},

		{
			name:    "IsValidEmail",
			fn:      IsValidEmail,
			valid:   []string{"alice@example.com", "bob.smith+tag@mail.example.org"},
			invalid: []string{"alice", "alice@", "@example.com", "alice example.com", ""},
		},

		{
			name:    "IsValidURL",
			fn:      IsValidURL,
			valid:   []string{"http://www.google.com", "https://example.com/a?b=c", "ftp://files.example.com"},
			invalid: []string{"XXX", "www.google.com", "/relative/path", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, value := range tt.valid {
				assert.True(t, tt.fn(value), value)
			}
			for _, value := range tt.invalid {
				assert.False(t, tt.fn(value), value)
			}
		})
	}
}
