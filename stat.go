// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

import (
	"cmp"
	"math"
)

// Standard fold instances.
// Each is an ordinary value built through [New] and the combinators; none
// is privileged by the core.

// Number constrains the element and accumulator types of the arithmetic
// folds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Float constrains the folds whose extraction divides.
type Float interface {
	~float32 | ~float64
}

// Sum accumulates the running total of its input.
func Sum[N Number]() Fold[N, N] {
	return New(func(s, a N) N { return s + a }, 0, func(s N) N { return s })
}

// Product accumulates the running product of its input.
func Product[N Number]() Fold[N, N] {
	return New(func(s, a N) N { return s * a }, 1, func(s N) N { return s })
}

// Count counts elements, ignoring their values. The accumulator
// representation is the caller's choice: Count[string, int]() counts in an
// int, Count[float64, float64]() in a float64 ready for division.
func Count[A any, N Number]() Fold[A, N] {
	return New(func(n N, _ A) N { return n + 1 }, 0, func(n N) N { return n })
}

// seen carries a value alongside whether any element has arrived yet.
type seen[A any] struct {
	ok bool
	v  A
}

// Min extracts the smallest element seen so far, or the zero value on
// empty input.
func Min[O cmp.Ordered]() Fold[O, O] {
	return New(func(s seen[O], a O) seen[O] {
		if !s.ok || a < s.v {
			return seen[O]{ok: true, v: a}
		}
		return s
	}, seen[O]{}, func(s seen[O]) O { return s.v })
}

// Max extracts the largest element seen so far, or the zero value on
// empty input.
func Max[O cmp.Ordered]() Fold[O, O] {
	return New(func(s seen[O], a O) seen[O] {
		if !s.ok || a > s.v {
			return seen[O]{ok: true, v: a}
		}
		return s
	}, seen[O]{}, func(s seen[O]) O { return s.v })
}

// First extracts the first element, or the zero value on empty input.
func First[A any]() Fold[A, A] {
	return New(func(s seen[A], a A) seen[A] {
		if s.ok {
			return s
		}
		return seen[A]{ok: true, v: a}
	}, seen[A]{}, func(s seen[A]) A { return s.v })
}

// Last extracts the most recent element, or the zero value on empty input.
func Last[A any]() Fold[A, A] {
	var zero A
	return New(func(_, a A) A { return a }, zero, func(a A) A { return a })
}

// Mean extracts the arithmetic mean: a single-pass composition of [Sum]
// and [Count]. Empty input divides zero by zero and extracts NaN; guarding
// that is the consumer's concern.
func Mean[F Float]() Fold[F, F] {
	return Ap(Map(Sum[F](), func(total F) func(F) F {
		return func(n F) F { return total / n }
	}), Count[F, F]())
}

// welford is the accumulator of [Variance]: Welford's single-pass
// recurrence, numerically stable under catastrophic cancellation.
type welford[F Float] struct {
	n    F
	mean F
	m2   F
}

// Variance extracts the population variance in a single pass. Empty input
// extracts NaN.
func Variance[F Float]() Fold[F, F] {
	return New(func(s welford[F], a F) welford[F] {
		n := s.n + 1
		delta := a - s.mean
		mean := s.mean + delta/n
		return welford[F]{n: n, mean: mean, m2: s.m2 + delta*(a-mean)}
	}, welford[F]{}, func(s welford[F]) F {
		return s.m2 / s.n
	})
}

// Stddev extracts the population standard deviation: [Variance] mapped
// through a square root.
func Stddev[F Float]() Fold[F, F] {
	return Map(Variance[F](), func(v F) F {
		return F(math.Sqrt(float64(v)))
	})
}
