// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import "context"

// Func is a generic operation that accepts an input and returns a result.
//
// Every predicate and transform plugged into the framework is a Func: a
// predicate is a Func[string, bool], a replacing transform is a
// Func[string, string], and an effect-only transform is a Func[string, Unit].
//
// Func instances can be composed using [Compose2], [Compose3], etc. to create
// type-safe pipelines where the output of one operation flows to the input of the next.
type Func[A, B any] interface {
	Call(ctx context.Context, input A) (B, error)
}

// FuncAdapter wraps a function as a [Func] implementation.
//
// Use this to create ad-hoc [Func] instances from closures when you need
// custom behavior that doesn't fit the existing primitives.
type FuncAdapter[A, B any] func(ctx context.Context, input A) (B, error)

// Call implements [Func].
func (f FuncAdapter[A, B]) Call(ctx context.Context, input A) (B, error) {
	return f(ctx, input)
}

// PureFunc lifts a function that cannot fail and ignores the context into a [Func].
//
// This is how plain predicates such as func(string) bool enter the framework.
func PureFunc[A, B any](fn func(A) B) Func[A, B] {
	return FuncAdapter[A, B](func(ctx context.Context, input A) (B, error) {
		return fn(input), nil
	})
}

// FallibleFunc lifts a function that may fail but ignores the context into a [Func].
func FallibleFunc[A, B any](fn func(A) (B, error)) Func[A, B] {
	return FuncAdapter[A, B](func(ctx context.Context, input A) (B, error) {
		return fn(input)
	})
}

// EffectFunc lifts a side-effecting function into a [Func] returning [Unit].
func EffectFunc[A any](fn func(A) error) Func[A, Unit] {
	return FuncAdapter[A, Unit](func(ctx context.Context, input A) (Unit, error) {
		return Unit{}, fn(input)
	})
}

// Not negates a predicate. Errors are propagated unchanged.
func Not[A any](fn Func[A, bool]) Func[A, bool] {
	return FuncAdapter[A, bool](func(ctx context.Context, input A) (bool, error) {
		ok, err := fn.Call(ctx, input)
		if err != nil {
			return false, err
		}
		return !ok, nil
	})
}
