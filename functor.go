// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Functor combinators for folds.
//
// A Fold is a functor on its result side (Map) and a contravariant functor
// on its input side (Contramap). Neither combinator touches the traversal:
// transition count, order, and state representation are unchanged.

// Map applies a pure function to the result of a Fold.
// The returned Fold has the same transition and accumulator; only
// extraction is composed with g.
//
// Law: Run(Map(f, g), xs) == g(Run(f, xs)) for every finite xs.
func Map[A, B, C any](f Fold[A, B], g func(B) C) Fold[A, C] {
	return New(f.step, f.accum, func(s Erased) C {
		return g(f.fetch(s))
	})
}

// Contramap applies a pure function to each element before it reaches a
// Fold. The returned Fold consumes Z instead of A: every incoming element
// passes through h and is then handed to the original transition function.
// Accumulator and extraction are unchanged.
//
// Law: Run(Contramap(f, h), zs) == Run(f, mapped zs) where mapped zs is zs
// with h applied to every element.
func Contramap[Z, A, B any](f Fold[A, B], h func(Z) A) Fold[Z, B] {
	return New(func(s Erased, z Z) Erased {
		return f.step(s, h(z))
	}, f.accum, f.fetch)
}
