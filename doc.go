// SPDX-License-Identifier: GPL-3.0-or-later

// Package argcheck adapts single-value functions into command line argument validators.
//
// # Core Abstraction
//
// The package is built around a single interface:
//
//	type Func[A, B any] interface {
//		Call(ctx context.Context, input A) (B, error)
//	}
//
// A predicate is a Func[string, bool], a replacing transform is a
// Func[string, string], and an effect-only transform is a Func[string, Unit].
// Plain Go functions enter the framework through [PureFunc], [FallibleFunc],
// [EffectFunc], and [FuncAdapter]; [Not] negates a predicate.
//
// # Variants
//
// A [Descriptor] names the function and the singular and plural error
// messages. Four constructors turn a descriptor into an [Action], which is a
// Func[Values, Values] receiving the raw argument and returning the value to store:
//
//   - [NewCheck]: rejects the argument unless the predicate holds for every value
//   - [NewAllowListCheck]: rejects the argument unless the function result for
//     every value belongs to an allow-list
//   - [NewTransform]: runs a side-effecting function on every value
//   - [NewTransformAndReplace]: replaces every value with the function result
//
// Constructors validate the descriptor and fail with a [*ConfigurationError]
// before any value is processed. Rejected arguments fail with a
// [*ValidationError] carrying the singular message for scalar input and the
// plural message for list input (see [Values]).
//
// Actions compose with [Compose2], so a check followed by a transform is
// itself an Action. [Chain] does the same for any number of actions.
//
// # Argument Parsers
//
// [NewValue] wraps an Action as a scalar [flag.Value] / [pflag.Value] and
// [NewSliceValue] as a list-valued [pflag.SliceValue]. The [Registry] maps
// names to validator constructors for tools that pick validators at runtime.
//
// Concrete validators live in the pathcheck, typecheck, and netcheck packages.
//
// # Observability
//
// All actions support structured logging via [SLogger] (compatible with [log/slog]).
// By default, logging is disabled. Each call emits a validateStart/validateDone
// pair at [slog.LevelInfo] and one validateValue event per element at
// [slog.LevelDebug]. Use [NewSpanID] with [*slog.Logger.With] to correlate the
// events of one command line invocation.
//
// # Timeout and Context Philosophy
//
// This package is context-transparent: actions never modify the context they
// receive. Network validators block until done or until the context is done;
// there are no retries.
package argcheck
