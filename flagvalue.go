// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"bytes"
	"context"
	"encoding/csv"
	"flag"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// NewValue returns a new [*Value] running action on a scalar argument.
//
// The ctx argument is the context passed to the action every time the
// parser calls Set. The caller controls its lifetime (e.g., a timeout
// covering the whole parse of the command line).
//
// The typeName argument is returned by [*Value.Type] and shown by pflag in
// the usage message (e.g., "path" or "url").
func NewValue(ctx context.Context, action Action, typeName string) *Value {
	return &Value{action: action, ctx: ctx, typeName: typeName}
}

// Value is a scalar command line argument guarded by an [Action].
//
// It implements [flag.Value], [flag.Getter], and [pflag.Value]. Each call to
// Set runs the action with singular cardinality and stores the value the
// action returns, so a replacing transform changes what Get returns.
type Value struct {
	action   Action
	ctx      context.Context
	typeName string
	value    string
}

var (
	_ flag.Getter = &Value{}
	_ pflag.Value = &Value{}
)

// Set implements [flag.Value].
func (v *Value) Set(s string) error {
	out, err := v.action.Call(v.ctx, NewScalar(s))
	if err != nil {
		return err
	}
	v.value = out.Scalar()
	return nil
}

// String implements [flag.Value].
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	return v.value
}

// Get implements [flag.Getter].
func (v *Value) Get() any {
	return v.value
}

// Type implements [pflag.Value].
func (v *Value) Type() string {
	return v.typeName
}

// NewSliceValue returns a new [*SliceValue] running action on a list argument.
//
// The ctx and typeName arguments have the same meaning as in [NewValue].
func NewSliceValue(ctx context.Context, action Action, typeName string) *SliceValue {
	return &SliceValue{action: action, ctx: ctx, typeName: typeName}
}

// SliceValue is a list-valued command line argument guarded by an [Action].
//
// It implements [pflag.Value] and [pflag.SliceValue]. Set parses its
// argument as comma separated values (like pflag string slices) and runs the
// action with plural cardinality. The first Set replaces the current
// values and later ones append to them. Append and Replace also run the
// action with plural cardinality.
type SliceValue struct {
	action   Action
	changed  bool
	ctx      context.Context
	typeName string
	values   []string
}

var (
	_ pflag.Value      = &SliceValue{}
	_ pflag.SliceValue = &SliceValue{}
)

// Set implements [pflag.Value].
func (v *SliceValue) Set(s string) error {
	items, err := readCSV(s)
	if err != nil {
		return err
	}
	out, err := v.action.Call(v.ctx, NewList(items...))
	if err != nil {
		return err
	}
	if !v.changed {
		v.values = out.Items()
	} else {
		v.values = append(v.values, out.Items()...)
	}
	v.changed = true
	return nil
}

// Append implements [pflag.SliceValue].
func (v *SliceValue) Append(s string) error {
	out, err := v.action.Call(v.ctx, NewList(s))
	if err != nil {
		return err
	}
	v.values = append(v.values, out.Items()...)
	return nil
}

// Replace implements [pflag.SliceValue].
func (v *SliceValue) Replace(s []string) error {
	out, err := v.action.Call(v.ctx, NewList(s...))
	if err != nil {
		return err
	}
	v.values = out.Items()
	return nil
}

// GetSlice implements [pflag.SliceValue].
func (v *SliceValue) GetSlice() []string {
	return slices.Clone(v.values)
}

// String implements [pflag.Value].
func (v *SliceValue) String() string {
	if v == nil {
		return "[]"
	}
	return "[" + writeCSV(v.values) + "]"
}

// Type implements [pflag.Value].
func (v *SliceValue) Type() string {
	return v.typeName
}

func readCSV(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	return csv.NewReader(strings.NewReader(s)).Read()
}

func writeCSV(values []string) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(values)
	w.Flush()
	return strings.TrimSuffix(buf.String(), "\n")
}
