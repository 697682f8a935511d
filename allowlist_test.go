// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStatusDescriptor returns a descriptor mapping a URL to a fake status code.
func newStatusDescriptor(codes map[string]string) Descriptor[string] {
	return Descriptor[string]{
		Name: "http-status",
		Func: FallibleFunc(func(s string) (string, error) {
			code, found := codes[s]
			if !found {
				return "", errors.New("connection refused")
			}
			return code, nil
		}),
		Singular: "URL status code is not allowed",
		Plural:   "at least one URL status code is not allowed",
	}
}

// Registration fails for missing or empty allow-lists and incomplete descriptors.
func TestNewAllowListCheckConfiguration(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// desc is the descriptor to register.
		desc Descriptor[string]

		// allowed is the allow-list to register.
		allowed []string

		// wantField is the expected offending field, empty if valid.
		wantField string
	}{
		{
			name:      "valid",
			desc:      newStatusDescriptor(nil),
			allowed:   []string{"200"},
			wantField: "",
		},

		{
			name:      "nil allow-list",
			desc:      newStatusDescriptor(nil),
			allowed:   nil,
			wantField: "allowed",
		},

		{
			name:      "empty allow-list",
			desc:      newStatusDescriptor(nil),
			allowed:   []string{},
			wantField: "allowed",
		},

		{
			name:      "missing Func",
			desc:      Descriptor[string]{Singular: "x", Plural: "y"},
			allowed:   []string{"200"},
			wantField: "Func",
		},

		{
			name:      "missing Plural",
			desc:      Descriptor[string]{Func: PureFunc(func(s string) string { return s }), Singular: "x"},
			allowed:   []string{"200"},
			wantField: "Plural",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := NewAllowListCheck(NewConfig(), tt.desc, tt.allowed, DefaultSLogger())

			if tt.wantField == "" {
				require.NoError(t, err)
				require.NotNil(t, check)
				return
			}

			var cerr *ConfigurationError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.wantField, cerr.Field)
			assert.Nil(t, check)
		})
	}
}

// Status codes are accepted only when they appear in the allow-list.
func TestAllowListCheckStatusCodes(t *testing.T) {
	codes := map[string]string{
		"http://ok.example/":       "200",
		"http://moved.example/":    "301",
		"http://notfound.example/": "404",
	}
	check, err := NewAllowListCheck(NewConfig(), newStatusDescriptor(codes), []string{"200", "301"}, DefaultSLogger())
	require.NoError(t, err)

	t.Run("accepts 200", func(t *testing.T) {
		out, err := check.Call(context.Background(), NewScalar("http://ok.example/"))
		require.NoError(t, err)
		assert.Equal(t, "http://ok.example/", out.Scalar())
	})

	t.Run("rejects 404", func(t *testing.T) {
		_, err := check.Call(context.Background(), NewScalar("http://notfound.example/"))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "URL status code is not allowed", verr.Message)
		assert.Nil(t, verr.Err)
	})

	t.Run("accepts a list of allowed codes", func(t *testing.T) {
		_, err := check.Call(context.Background(), NewList("http://ok.example/", "http://moved.example/"))
		require.NoError(t, err)
	})

	t.Run("rejects a list with one disallowed code", func(t *testing.T) {
		_, err := check.Call(context.Background(), NewList("http://ok.example/", "http://notfound.example/"))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "at least one URL status code is not allowed", verr.Message)
		assert.Equal(t, 1, verr.Index)
	})

	t.Run("function failure is a validation error", func(t *testing.T) {
		_, err := check.Call(context.Background(), NewScalar("http://down.example/"))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.EqualError(t, verr.Err, "connection refused")
	})
}

// The allow-list is copied at registration time.
func TestAllowListCheckCopiesAllowList(t *testing.T) {
	allowed := []int{1, 2}
	check, err := NewAllowListCheck(NewConfig(), Descriptor[int]{
		Func:     PureFunc(func(s string) int { return len(s) }),
		Singular: "bad length",
		Plural:   "bad lengths",
	}, allowed, DefaultSLogger())
	require.NoError(t, err)

	allowed[0] = 10
	assert.Equal(t, []int{1, 2}, check.Allowed())

	_, err = check.Call(context.Background(), NewScalar("a"))
	require.NoError(t, err)
}

func TestValidateAllowList(t *testing.T) {
	var cerr *ConfigurationError

	require.ErrorAs(t, ValidateAllowList[string]("file-has-extension", nil), &cerr)
	assert.Equal(t, "file-has-extension", cerr.Name)
	assert.Equal(t, "allowed", cerr.Field)
	assert.Equal(t, "missing required attribute", cerr.Reason)

	require.ErrorAs(t, ValidateAllowList("file-has-extension", []string{}), &cerr)
	assert.Equal(t, "cannot be empty", cerr.Reason)

	assert.NoError(t, ValidateAllowList("file-has-extension", []string{"go"}))
}
