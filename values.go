// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"slices"
	"strings"
)

// Values is the value of a command line argument: either a single string
// (scalar) or an ordered sequence of strings (list).
//
// Scalars are normalized into a one-element sequence at construction time so
// that validators run uniform sequence logic and only look at the cardinality
// to pick the singular or the plural message.
//
// The zero value is a scalar holding no strings.
type Values struct {
	items []string
	list  bool
}

// NewScalar returns [Values] holding a single string.
func NewScalar(value string) Values {
	return Values{items: []string{value}, list: false}
}

// NewList returns [Values] holding an ordered sequence of strings.
//
// The argument slice is copied.
func NewList(values ...string) Values {
	return Values{items: slices.Clone(values), list: true}
}

// IsList returns whether the argument was list-valued.
func (v Values) IsList() bool {
	return v.list
}

// Len returns the number of strings.
func (v Values) Len() int {
	return len(v.items)
}

// Items returns a copy of the strings in input order.
func (v Values) Items() []string {
	return slices.Clone(v.items)
}

// Scalar returns the first string or the empty string.
func (v Values) Scalar() string {
	if len(v.items) <= 0 {
		return ""
	}
	return v.items[0]
}

// String returns a human readable representation.
func (v Values) String() string {
	if !v.list {
		return v.Scalar()
	}
	return "[" + strings.Join(v.items, " ") + "]"
}

// withItems returns new [Values] with the same cardinality and the given items.
func (v Values) withItems(items []string) Values {
	return Values{items: items, list: v.list}
}
