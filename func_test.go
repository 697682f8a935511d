// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncAdapter(t *testing.T) {
	called := false
	adapter := FuncAdapter[int, string](func(ctx context.Context, input int) (string, error) {
		called = true
		return "result", nil
	})

	output, err := adapter.Call(context.Background(), 42)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "result", output)
}

func TestPureFunc(t *testing.T) {
	fn := PureFunc(strings.ToUpper)

	output, err := fn.Call(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "ABC", output)
}

func TestFallibleFunc(t *testing.T) {
	wantErr := errors.New("mocked error")
	fn := FallibleFunc(func(s string) (int, error) {
		if s == "" {
			return 0, wantErr
		}
		return len(s), nil
	})

	output, err := fn.Call(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, 3, output)

	_, err = fn.Call(context.Background(), "")
	require.ErrorIs(t, err, wantErr)
}

func TestEffectFunc(t *testing.T) {
	var seen []string
	fn := EffectFunc(func(s string) error {
		seen = append(seen, s)
		return nil
	})

	_, err := fn.Call(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, seen)
}

func TestNot(t *testing.T) {
	t.Run("negates the result", func(t *testing.T) {
		fn := Not(PureFunc(func(s string) bool { return s == "yes" }))

		ok, err := fn.Call(context.Background(), "yes")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = fn.Call(context.Background(), "no")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("propagates errors and returns false", func(t *testing.T) {
		wantErr := errors.New("mocked error")
		fn := Not(FallibleFunc(func(s string) (bool, error) { return false, wantErr }))

		ok, err := fn.Call(context.Background(), "x")
		require.ErrorIs(t, err, wantErr)
		assert.False(t, ok)
	})
}
