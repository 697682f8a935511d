// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"context"
	"errors"
	"time"
)

// NewTransform returns a new [*Transform] or a [*ConfigurationError].
//
// The cfg argument contains the common configuration.
//
// The desc argument must have Func set. Singular and Plural are optional
// and are used to report failures of Func.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewTransform(cfg *Config, desc Descriptor[Unit], logger SLogger) (*Transform, error) {
	if err := desc.requireFunc(); err != nil {
		return nil, err
	}
	return &Transform{
		desc:          desc,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}, nil
}

// Transform applies a side-effecting function to every value and returns
// the values unchanged (e.g., "create the directory if missing").
//
// The function is applied to every value in input order, even when it fails
// for an earlier one. The returned [*ValidationError] refers to the first
// failing value and wraps all the failures.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type Transform struct {
	desc Descriptor[Unit]

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewTransform] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewTransform] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewTransform] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Action = &Transform{}

// Name returns the descriptor name.
func (op *Transform) Name() string {
	return op.desc.Name
}

// Call implements [Action].
func (op *Transform) Call(ctx context.Context, values Values) (Values, error) {
	span := &actionSpan{op.ErrClassifier, op.Logger, op.desc.Name, op.TimeNow, "transform"}
	t0 := op.TimeNow()
	span.logStart(values, t0)
	_, err := mapValues(ctx, span, &op.desc, values)
	span.logDone(values, t0, err)
	if err != nil {
		return Values{}, err
	}
	return values, nil
}

// NewTransformAndReplace returns a new [*TransformAndReplace] or a [*ConfigurationError].
//
// The cfg argument contains the common configuration.
//
// The desc argument must have Func set. Singular and Plural are optional
// and are used to report failures of Func.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewTransformAndReplace(cfg *Config, desc Descriptor[string], logger SLogger) (*TransformAndReplace, error) {
	if err := desc.requireFunc(); err != nil {
		return nil, err
	}
	return &TransformAndReplace{
		desc:          desc,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}, nil
}

// TransformAndReplace applies a function to every value and returns new
// values where element i is the result of the function applied to the
// original element i (e.g., path canonicalization).
//
// The result has the same cardinality, length, and order as the input.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type TransformAndReplace struct {
	desc Descriptor[string]

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewTransformAndReplace] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewTransformAndReplace] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewTransformAndReplace] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Action = &TransformAndReplace{}

// Name returns the descriptor name.
func (op *TransformAndReplace) Name() string {
	return op.desc.Name
}

// Call implements [Action].
func (op *TransformAndReplace) Call(ctx context.Context, values Values) (Values, error) {
	span := &actionSpan{op.ErrClassifier, op.Logger, op.desc.Name, op.TimeNow, "replace"}
	t0 := op.TimeNow()
	span.logStart(values, t0)
	updated, err := mapValues(ctx, span, &op.desc, values)
	span.logDone(values, t0, err)
	if err != nil {
		return Values{}, err
	}
	return values.withItems(updated), nil
}

// mapValues applies desc.Func to every value in order and collects the results.
//
// All values are visited even after a failure.
func mapValues[T any](ctx context.Context, span *actionSpan, desc *Descriptor[T], values Values) ([]T, error) {
	var (
		errs     []error
		firstIdx = -1
		out      = make([]T, 0, len(values.items))
	)
	for idx, value := range values.items {
		result, err := desc.Func.Call(ctx, value)
		span.logValue(idx, value, err == nil, err)
		out = append(out, result)
		if err != nil {
			errs = append(errs, err)
			if firstIdx < 0 {
				firstIdx = idx
			}
		}
	}
	switch {
	case len(errs) == 1:
		return nil, span.reject(desc.message(values.list), values, firstIdx, errs[0])
	case len(errs) > 1:
		return nil, span.reject(desc.message(values.list), values, firstIdx, errors.Join(errs...))
	}
	return out, nil
}
