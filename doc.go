// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fold provides composable single-pass aggregation over ordered
// sequences in Go.
//
// The core type [Fold] pairs a pure transition function, a current
// accumulator, and a pure extraction function. Independent summary
// computations (sum, count, variance components) are defined separately and
// combined so that a single left-to-right traversal of the data computes
// all of them at once, with no re-traversal and no hand-fused accumulator
// logic at the call site.
//
// # Design Philosophy
//
// fold provides:
//   - A minimal but complete core: one value type, one smart constructor,
//     one interpreter
//   - Free generic combinator functions rather than method chains, so each
//     combinator can introduce its own type parameters
//   - Immutable values throughout: advancing a Fold always produces a new
//     Fold, never mutates an existing one
//
// # Core Operations
//
//   - [New]: Build a Fold from a transition function, an initial
//     accumulator, and an extraction function
//   - [Run]: Drive a Fold over a finite iter.Seq, left to right, and
//     extract the result
//   - [RunSlice]: Variadic convenience over [Run]
//
// # Functor Combinators
//
//   - [Map]: Transform the result side — compose a function after
//     extraction
//   - [Contramap]: Transform the input side — compose a function before
//     each transition
//
// # Single-Pass Composition
//
// [Ap] merges a function-valued Fold with an argument Fold into one Fold
// whose single traversal drives both transition functions against the same
// element stream. Each element is visited exactly once total, not once per
// aggregate. Derived conveniences:
//
//   - [Map2]: Combine two Fold results with a binary function
//   - [Zip]: Combine two Fold results into a [Pair]
//
// Composing more than two folds nests [Ap] (or [Map2]); the pairing is
// associative up to observation.
//
// # Resumable Folds
//
// A Fold is a comonadic value: its accumulator is a first-class snapshot of
// a traversal in progress.
//
//   - [Duplicate]: A Fold whose result is the traversal itself, resumed
//     from the current state, as a brand-new Fold
//   - [Extract]: The result as it stands right now, consuming no input
//   - [Extend]: Generalized [Map] whose function sees the whole resumable
//     continuation, not just the extracted value
//   - [Feed], [Step]: Advance a Fold by a sequence or a single element,
//     returning the advanced Fold
//
// Because state is immutable, one captured prefix may be resumed any number
// of times with different suffixes, yielding independent results.
//
// # Standard Folds
//
// Ready-made instances over the numeric constraints [Number] and [Float],
// and over [cmp.Ordered]:
//
//   - [Sum], [Product], [Count]
//   - [Min], [Max], [First], [Last]
//   - [Mean], [Variance], [Stddev]
//
// # Purity Contract
//
// Transition and extraction functions supplied to [New] must be pure and
// total: no side effects, and equal arguments produce equal results. The
// package neither validates nor guards this; behavior under an impure
// transition function is unspecified. No operation in the package returns
// an error. Every exported operation is total given well-typed, pure
// inputs, and degenerate numeric cases (a mean of zero elements, say)
// belong to the extraction function's own semantics, not to the core.
//
// # Erased Accumulator
//
// The accumulator type is existential: [New] chooses it, the [Fold] type
// does not mention it, and no consumer can observe it except through
// extraction. Internally the accumulator is carried as [Erased] and the
// concrete type is recovered by assertion inside the closures [New] builds,
// so the erasure never leaks past the construction site.
//
// # Concurrency
//
// Interpretation is strictly sequential: each transition depends on the
// state the previous one produced. There is no shared mutable state
// anywhere in the package, so distinct Fold values — including multiple
// resumptions captured from the same prefix — may be interpreted
// concurrently without coordination.
//
// # Example
//
//	mean := fold.Ap(
//		fold.Map(fold.Sum[float64](), func(total float64) func(float64) float64 {
//			return func(n float64) float64 { return total / n }
//		}),
//		fold.Count[float64, float64](),
//	)
//
//	result := fold.RunSlice(mean, 1, 2, 3, 4) // 2.5, one pass
package fold
