// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Comonadic combinators: resumable folds.
//
// The accumulator of a Fold is a first-class snapshot of a traversal in
// progress. Duplicate reifies that snapshot as an ordinary Fold value;
// Extract observes it without consuming input; Extend generalizes Map to
// functions that see the whole resumable continuation.
//
// Laws, for any Fold f:
//
//	Extract(Duplicate(f))            ≡ f   (observationally)
//	Map(Duplicate(f), Extract)       ≡ f   (observationally)
//	Map(Duplicate(f), Duplicate)     ≡ Duplicate(Duplicate(f))
//
// Unlike a captured continuation, a duplicated fold is multi-shot: state is
// immutable, so one prefix may be resumed any number of times with
// different suffixes, yielding independent results.

// Duplicate returns a Fold whose result is the traversal itself: same
// transition, same accumulator, but extraction captures the current state
// and returns a brand-new Fold resumed from it. Interpreting the
// duplicated Fold over a prefix therefore yields "the original fold,
// continued from after that prefix" as an ordinary value.
func Duplicate[A, B any](f Fold[A, B]) Fold[A, Fold[A, B]] {
	return New(f.step, f.accum, func(s Erased) Fold[A, B] {
		return New(f.step, s, f.fetch)
	})
}

// Extract returns the result of a Fold as it stands right now, consuming
// no input. On a freshly constructed Fold this is extraction applied to
// the initial accumulator.
func Extract[A, B any](f Fold[A, B]) B {
	return f.fetch(f.accum)
}

// Extend maps a function over the duplicated Fold: k receives the whole
// resumable continuation rather than the extracted value, and may for
// example drive it further with additional input before deciding on a
// result. Extend(f, k) is Map(Duplicate(f), k); Extend(f, Extract) is
// observationally f.
func Extend[A, B, C any](f Fold[A, B], k func(Fold[A, B]) C) Fold[A, C] {
	return Map(Duplicate(f), k)
}
