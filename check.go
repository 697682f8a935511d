// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"context"
	"time"
)

// Action is the uniform shape of every validator: it receives the raw
// argument value and returns the value to store, or an error to reject it.
type Action = Func[Values, Values]

// NewCheck returns a new [*Check] or a [*ConfigurationError].
//
// The cfg argument contains the common configuration.
//
// The desc argument must have Func, Singular, and Plural set.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewCheck(cfg *Config, desc Descriptor[bool], logger SLogger) (*Check, error) {
	if err := desc.requireMessages(); err != nil {
		return nil, err
	}
	return &Check{
		desc:          desc,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}, nil
}

// Check rejects the argument unless the predicate holds for every value.
//
// On success the values are returned unchanged. Values are checked in input
// order and the first rejected value stops the check.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type Check struct {
	desc Descriptor[bool]

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewCheck] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewCheck] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewCheck] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Action = &Check{}

// Name returns the descriptor name.
func (op *Check) Name() string {
	return op.desc.Name
}

// Call implements [Action].
func (op *Check) Call(ctx context.Context, values Values) (Values, error) {
	span := &actionSpan{op.ErrClassifier, op.Logger, op.desc.Name, op.TimeNow, "check"}
	t0 := op.TimeNow()
	span.logStart(values, t0)
	err := op.check(ctx, span, values)
	span.logDone(values, t0, err)
	if err != nil {
		return Values{}, err
	}
	return values, nil
}

func (op *Check) check(ctx context.Context, span *actionSpan, values Values) error {
	for idx, value := range values.items {
		ok, err := op.desc.Func.Call(ctx, value)
		span.logValue(idx, value, ok && err == nil, err)
		if err != nil || !ok {
			return span.reject(op.desc.message(values.list), values, idx, err)
		}
	}
	return nil
}
