// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Erased represents a type-erased accumulator value.
// Fold carries its accumulator as Erased so that the state type stays
// existential: it appears in the signature of [New] and nowhere else.
// Concrete types are recovered via type assertions inside the closures
// built at the construction site.
type Erased = any

// Fold represents a resumable single-pass aggregation.
// Fold[A, B] consumes elements of type A and extracts a result of type B.
//
// A Fold is three things: a pure transition function from state and element
// to next state, the current accumulator, and a pure extraction function
// from state to result. At construction the accumulator is the initial
// value; after interpretation it is the state reached by consuming some
// prefix of input.
//
// Fold values are immutable. The interpreter and every combinator produce
// new values; nothing is ever advanced in place, so the same Fold may be
// interpreted against different sequences any number of times.
type Fold[A, B any] struct {
	step  func(Erased, A) Erased
	accum Erased
	fetch func(Erased) B
}

// New builds a Fold from a transition function, an initial accumulator,
// and an extraction function. This is the only route from raw parts to a
// Fold; every combinator in the package is itself defined through New, so
// the algebraic laws documented on [Map], [Ap], and [Duplicate] hold by
// construction.
//
// step and fetch must be pure and total. The package cannot check this;
// it is a caller obligation.
func New[A, S, B any](step func(S, A) S, initial S, fetch func(S) B) Fold[A, B] {
	// Comma-ok recovery: when S is itself an interface type, a nil
	// interface state must come back as the nil S the caller stored, not
	// panic the assertion. The accumulator is only ever a value this
	// constructor wrapped, so the discarded failure case is exactly nil.
	return Fold[A, B]{
		step: func(s Erased, a A) Erased {
			v, _ := s.(S)
			return step(v, a)
		},
		accum: initial,
		fetch: func(s Erased) B {
			v, _ := s.(S)
			return fetch(v)
		},
	}
}
