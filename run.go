// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

import "iter"

// Run drives a Fold over a finite sequence and extracts the result.
// Elements are consumed strictly in sequence order, left to right, each
// exactly once; reordering is never performed, so the transition function
// need not be commutative or associative. After the last element the
// extraction function is applied to the final state.
//
// Run does not modify f. The sequence must be finite; Run over a
// non-terminating sequence does not return.
func Run[A, B any](f Fold[A, B], seq iter.Seq[A]) B {
	acc := f.accum
	for a := range seq {
		acc = f.step(acc, a)
	}
	return f.fetch(acc)
}

// RunSlice drives a Fold over the given elements in argument order.
// Variadic convenience over [Run].
func RunSlice[A, B any](f Fold[A, B], xs ...A) B {
	acc := f.accum
	for _, a := range xs {
		acc = f.step(acc, a)
	}
	return f.fetch(acc)
}

// Step advances a Fold by a single element, returning the advanced Fold.
// The receiver-equivalent of one interpreter iteration: the returned Fold
// carries the state after consuming a, with transition and extraction
// unchanged. f itself is not modified, so a Fold may be stepped from the
// same state down multiple divergent paths.
func Step[A, B any](f Fold[A, B], a A) Fold[A, B] {
	return New(f.step, f.step(f.accum, a), f.fetch)
}

// Feed drives a Fold over a finite sequence and returns the advanced Fold
// rather than the extracted result. Feed(f, seq) is Run(Duplicate(f), seq).
func Feed[A, B any](f Fold[A, B], seq iter.Seq[A]) Fold[A, B] {
	return Run(Duplicate(f), seq)
}

// FeedSlice advances a Fold by the given elements in argument order.
// Variadic convenience over [Feed].
func FeedSlice[A, B any](f Fold[A, B], xs ...A) Fold[A, B] {
	return RunSlice(Duplicate(f), xs...)
}
