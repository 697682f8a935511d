// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"context"
	"log/slog"

	"github.com/bassosimone/slogstub"
)

// newCapturingLogger returns a logger that captures all log records into the
// returned slice. The caller can inspect the slice after exercising the code
// under test to verify which events were emitted.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	return slog.New(handler), &records
}

// recordAttrs flattens the attributes of a record into a map.
func recordAttrs(record slog.Record) map[string]slog.Value {
	out := make(map[string]slog.Value)
	record.Attrs(func(attr slog.Attr) bool {
		out[attr.Key] = attr.Value
		return true
	})
	return out
}

// isEven is the predicate used by the table-driven tests.
func isEven(s string) bool {
	return len(s)%2 == 0
}

// newEvenCheckDescriptor returns a valid check descriptor based on [isEven].
func newEvenCheckDescriptor() Descriptor[bool] {
	return Descriptor[bool]{
		Name:     "even-length",
		Func:     PureFunc(isEven),
		Singular: "value has odd length",
		Plural:   "at least one value has odd length",
	}
}
