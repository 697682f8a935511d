// SPDX-License-Identifier: GPL-3.0-or-later

package typecheck

import (
	"context"
	"testing"

	"github.com/bassosimone/argcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsIntWithList(t *testing.T) {
	check, err := argcheck.NewCheck(argcheck.NewConfig(), ValueIsInt(), argcheck.DefaultSLogger())
	require.NoError(t, err)

	out, err := check.Call(context.Background(), argcheck.NewList("1", "2", "3"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, out.Items())

	_, err = check.Call(context.Background(), argcheck.NewList("1", "two", "3"))
	var verr *argcheck.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "at least one value is not convertible to int", verr.Message)
	assert.Equal(t, 1, verr.Index)

	_, err = check.Call(context.Background(), argcheck.NewScalar("two"))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "value is not convertible to int", verr.Message)
}

func TestRegister(t *testing.T) {
	reg := argcheck.NewRegistry()
	require.NoError(t, Register(reg))
	assert.Equal(t, []string{
		"is-convertible-to-float",
		"is-convertible-to-int",
		"is-convertible-to-uuid",
		"is-falsy",
		"is-truthy",
	}, reg.Names())
}
