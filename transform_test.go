// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Transform and TransformAndReplace require only Func.
func TestNewTransformConfiguration(t *testing.T) {
	t.Run("Transform without Func", func(t *testing.T) {
		op, err := NewTransform(NewConfig(), Descriptor[Unit]{Name: "ensure"}, DefaultSLogger())
		var cerr *ConfigurationError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "Func", cerr.Field)
		assert.Equal(t, "ensure", cerr.Name)
		assert.Nil(t, op)
	})

	t.Run("Transform with only Func", func(t *testing.T) {
		op, err := NewTransform(NewConfig(), Descriptor[Unit]{
			Func: EffectFunc(func(string) error { return nil }),
		}, DefaultSLogger())
		require.NoError(t, err)
		require.NotNil(t, op)
	})

	t.Run("TransformAndReplace without Func", func(t *testing.T) {
		op, err := NewTransformAndReplace(NewConfig(), Descriptor[string]{}, DefaultSLogger())
		var cerr *ConfigurationError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "Func", cerr.Field)
		assert.Nil(t, op)
	})

	t.Run("TransformAndReplace with only Func", func(t *testing.T) {
		op, err := NewTransformAndReplace(NewConfig(), Descriptor[string]{
			Func: PureFunc(strings.ToUpper),
		}, DefaultSLogger())
		require.NoError(t, err)
		require.NotNil(t, op)
	})
}

// Transform applies the function to every value and returns them unchanged.
func TestTransformCall(t *testing.T) {
	var seen []string
	op, err := NewTransform(NewConfig(), Descriptor[Unit]{
		Name: "record",
		Func: EffectFunc(func(s string) error {
			seen = append(seen, s)
			return nil
		}),
	}, DefaultSLogger())
	require.NoError(t, err)

	input := NewList("a", "b", "c")
	out, err := op.Call(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, input, out)
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

// Transform visits every value even when an earlier one fails.
func TestTransformVisitsAllValues(t *testing.T) {
	errA := errors.New("cannot create a")
	errC := errors.New("cannot create c")
	var seen []string
	op, err := NewTransform(NewConfig(), Descriptor[Unit]{
		Name: "ensure",
		Func: EffectFunc(func(s string) error {
			seen = append(seen, s)
			switch s {
			case "a":
				return errA
			case "c":
				return errC
			default:
				return nil
			}
		}),
		Plural: "at least one value could not be created",
	}, DefaultSLogger())
	require.NoError(t, err)

	_, err = op.Call(context.Background(), NewList("a", "b", "c"))

	assert.Equal(t, []string{"a", "b", "c"}, seen)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "at least one value could not be created", verr.Message)
	assert.Equal(t, 0, verr.Index)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errC)
}

// Without messages, failures use a generic message naming the validator.
func TestTransformGenericMessage(t *testing.T) {
	op, err := NewTransform(NewConfig(), Descriptor[Unit]{
		Name: "ensure-directory",
		Func: EffectFunc(func(s string) error { return errors.New("permission denied") }),
	}, DefaultSLogger())
	require.NoError(t, err)

	_, err = op.Call(context.Background(), NewScalar("/x"))

	assert.EqualError(t, err, "cannot apply ensure-directory: permission denied")
}

// TransformAndReplace on [v1..vn] yields [f(v1)..f(vn)].
func TestTransformAndReplaceCall(t *testing.T) {
	op, err := NewTransformAndReplace(NewConfig(), Descriptor[string]{
		Name: "upper",
		Func: PureFunc(strings.ToUpper),
	}, DefaultSLogger())
	require.NoError(t, err)

	t.Run("list preserves order and length", func(t *testing.T) {
		out, err := op.Call(context.Background(), NewList("c", "a", "b", "a"))
		require.NoError(t, err)
		assert.True(t, out.IsList())
		assert.Equal(t, []string{"C", "A", "B", "A"}, out.Items())
	})

	t.Run("scalar stays scalar", func(t *testing.T) {
		out, err := op.Call(context.Background(), NewScalar("x"))
		require.NoError(t, err)
		assert.False(t, out.IsList())
		assert.Equal(t, "X", out.Scalar())
	})

	t.Run("the input is not modified", func(t *testing.T) {
		input := NewList("x", "y")
		_, err := op.Call(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, input.Items())
	})
}

// Resolving "./a/../b" yields the absolute canonical path to b.
func TestTransformAndReplaceResolvesRelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o755))
	t.Chdir(dir)

	op, err := NewTransformAndReplace(NewConfig(), Descriptor[string]{
		Name: "resolve-path",
		Func: FallibleFunc(func(s string) (string, error) {
			abs, err := filepath.Abs(s)
			if err != nil {
				return "", err
			}
			return filepath.EvalSymlinks(abs)
		}),
	}, DefaultSLogger())
	require.NoError(t, err)

	out, err := op.Call(context.Background(), NewScalar("./a/../b"))
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(dir, "b"))
	require.NoError(t, err)
	assert.Equal(t, want, out.Scalar())
	assert.True(t, filepath.IsAbs(out.Scalar()))
}
