// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"context"
	"slices"
	"time"

	"github.com/samber/lo"
)

// NewAllowListCheck returns a new [*AllowListCheck] or a [*ConfigurationError].
//
// The cfg argument contains the common configuration.
//
// The desc argument must have Func, Singular, and Plural set.
//
// The allowed argument lists the accepted results of desc.Func. It must
// not be nil or empty. It is copied, so later changes do not affect the check.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewAllowListCheck[T comparable](
	cfg *Config, desc Descriptor[T], allowed []T, logger SLogger) (*AllowListCheck[T], error) {
	if err := desc.requireMessages(); err != nil {
		return nil, err
	}
	if err := ValidateAllowList(desc.Name, allowed); err != nil {
		return nil, err
	}
	return &AllowListCheck[T]{
		allowed:       slices.Clone(allowed),
		desc:          desc,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}, nil
}

// AllowListCheck rejects the argument unless the result of the function
// applied to every value is a member of the allow-list.
//
// On success the values are returned unchanged. An error returned by the
// function rejects the value.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type AllowListCheck[T comparable] struct {
	allowed []T
	desc    Descriptor[T]

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewAllowListCheck] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewAllowListCheck] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewAllowListCheck] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Action = &AllowListCheck[string]{}

// Allowed returns a copy of the allow-list.
func (op *AllowListCheck[T]) Allowed() []T {
	return slices.Clone(op.allowed)
}

// Name returns the descriptor name.
func (op *AllowListCheck[T]) Name() string {
	return op.desc.Name
}

// Call implements [Action].
func (op *AllowListCheck[T]) Call(ctx context.Context, values Values) (Values, error) {
	span := &actionSpan{op.ErrClassifier, op.Logger, op.desc.Name, op.TimeNow, "allowList"}
	t0 := op.TimeNow()
	span.logStart(values, t0)
	err := op.check(ctx, span, values)
	span.logDone(values, t0, err)
	if err != nil {
		return Values{}, err
	}
	return values, nil
}

func (op *AllowListCheck[T]) check(ctx context.Context, span *actionSpan, values Values) error {
	for idx, value := range values.items {
		result, err := op.desc.Func.Call(ctx, value)
		ok := err == nil && lo.Contains(op.allowed, result)
		span.logValue(idx, value, ok, err)
		if !ok {
			return span.reject(op.desc.message(values.list), values, idx, err)
		}
	}
	return nil
}

// ValidateAllowList returns a [*ConfigurationError] when allowed is nil
// or empty, naming the validator called name.
//
// Validators that take their allow-list as constructor arguments use it
// to reject a missing allow-list the same way [NewAllowListCheck] does.
func ValidateAllowList[T any](name string, allowed []T) error {
	if allowed == nil {
		return newMissingAttributeError(name, "allowed")
	}
	if len(allowed) <= 0 {
		return &ConfigurationError{Name: name, Field: "allowed", Reason: "cannot be empty"}
	}
	return nil
}
