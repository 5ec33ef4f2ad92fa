// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Single-pass parallel composition.
//
// Ap is the reason independent aggregates can share one traversal: the
// composed Fold carries the pair of both states and advances both on every
// element, so each element is visited exactly once total rather than once
// per aggregate. The two aggregate definitions stay textually independent;
// no caller ever fuses accumulators by hand.

// Pair is a generic 2-tuple. It is the state shape of [Ap] and the result
// shape of [Zip].
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Ap composes a function-valued Fold with an argument Fold over the same
// element type. On each element both transition functions run against the
// same element; extraction applies the first Fold's result (a function) to
// the second's.
//
// Composing more than two folds nests Ap; the nesting order is
// observationally irrelevant. [Map2] and [Zip] cover the common cases
// without manual currying.
func Ap[A, X, Y any](ff Fold[A, func(X) Y], fx Fold[A, X]) Fold[A, Y] {
	return New(
		func(p Pair[Erased, Erased], a A) Pair[Erased, Erased] {
			return Pair[Erased, Erased]{Fst: ff.step(p.Fst, a), Snd: fx.step(p.Snd, a)}
		},
		Pair[Erased, Erased]{Fst: ff.accum, Snd: fx.accum},
		func(p Pair[Erased, Erased]) Y {
			return ff.fetch(p.Fst)(fx.fetch(p.Snd))
		},
	)
}

// Map2 combines the results of two Folds with a binary function, driving
// both in a single pass. Equivalent to Ap(Map(fx, curry g), fy).
func Map2[A, X, Y, Z any](fx Fold[A, X], fy Fold[A, Y], g func(X, Y) Z) Fold[A, Z] {
	return Ap(Map(fx, func(x X) func(Y) Z {
		return func(y Y) Z { return g(x, y) }
	}), fy)
}

// Zip combines two Folds into one producing both results as a [Pair],
// driving both in a single pass.
func Zip[A, X, Y any](fx Fold[A, X], fy Fold[A, Y]) Fold[A, Pair[X, Y]] {
	return Map2(fx, fy, func(x X, y Y) Pair[X, Y] {
		return Pair[X, Y]{Fst: x, Snd: y}
	})
}
