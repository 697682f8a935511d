// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(
		CheckEntry("value has even length", newEvenCheckDescriptor()),
		ReplaceEntry("uppercase the value", Descriptor[string]{Name: "upper", Func: PureFunc(strings.ToUpper)}),
		TransformEntry("do nothing", Descriptor[Unit]{Name: "noop", Func: EffectFunc(func(string) error { return nil })}),
		AllowListEntry("length is allowed", Descriptor[string]{
			Name:     "length-in",
			Func:     PureFunc(func(s string) string { return string(rune('0' + len(s))) }),
			Singular: "length is not allowed",
			Plural:   "at least one length is not allowed",
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"even-length", "length-in", "noop", "upper"}, reg.Names())

	t.Run("lookup and build", func(t *testing.T) {
		entry, found := reg.Lookup("upper")
		require.True(t, found)
		assert.Equal(t, "uppercase the value", entry.Help)

		action, err := entry.New(NewConfig(), DefaultSLogger(), nil)
		require.NoError(t, err)

		out, err := action.Call(context.Background(), NewScalar("x"))
		require.NoError(t, err)
		assert.Equal(t, "X", out.Scalar())
	})

	t.Run("allow-list entry uses the allowed argument", func(t *testing.T) {
		entry, found := reg.Lookup("length-in")
		require.True(t, found)

		action, err := entry.New(NewConfig(), DefaultSLogger(), []string{"2"})
		require.NoError(t, err)
		_, err = action.Call(context.Background(), NewScalar("ab"))
		require.NoError(t, err)

		action, err = entry.New(NewConfig(), DefaultSLogger(), nil)
		var cerr *ConfigurationError
		require.ErrorAs(t, err, &cerr)
		assert.Nil(t, action)
	})

	t.Run("missing entry", func(t *testing.T) {
		_, found := reg.Lookup("nonexistent")
		assert.False(t, found)
	})
}

func TestRegistryRegisterErrors(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// entry is the entry to register.
		entry Entry

		// wantReason is the expected reason.
		wantReason string
	}{
		{
			name:       "missing name",
			entry:      Entry{New: CheckEntry("", newEvenCheckDescriptor()).New},
			wantReason: "missing required attribute",
		},

		{
			name:       "missing constructor",
			entry:      Entry{Name: "x"},
			wantReason: "missing required attribute",
		},

		{
			name:       "duplicate",
			entry:      CheckEntry("again", newEvenCheckDescriptor()),
			wantReason: "already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			require.NoError(t, reg.Register(CheckEntry("even", newEvenCheckDescriptor())))

			err := reg.Register(tt.entry)

			var cerr *ConfigurationError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.wantReason, cerr.Reason)
		})
	}
}

// An entry whose descriptor is incomplete fails when built, not when called.
func TestRegistryEntryIncompleteDescriptor(t *testing.T) {
	entry := CheckEntry("broken", Descriptor[bool]{Name: "broken", Func: PureFunc(isEven)})

	action, err := entry.New(NewConfig(), DefaultSLogger(), nil)

	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Singular", cerr.Field)
	assert.Nil(t, action)
}

// A failed constructor yields a nil Action, not a typed nil pointer.
func TestAsAction(t *testing.T) {
	action, err := AsAction(NewCheck(NewConfig(), Descriptor[bool]{Name: "broken"}, DefaultSLogger()))
	require.Error(t, err)
	assert.True(t, action == nil)

	action, err = AsAction(NewCheck(NewConfig(), newEvenCheckDescriptor(), DefaultSLogger()))
	require.NoError(t, err)
	require.NotNil(t, action)
	_, err = action.Call(context.Background(), NewScalar("ab"))
	assert.NoError(t, err)
}
