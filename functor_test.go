// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/fold"
)

func TestMapAfterLaw(t *testing.T) {
	double := func(x int) int { return x * 2 }
	xs := []int{1, 2, 3, 4}
	left := fold.RunSlice(fold.Map(sumInt(), double), xs...)
	right := double(fold.RunSlice(sumInt(), xs...))
	if left != right {
		t.Fatalf("map-after law: %d != %d", left, right)
	}
}

func TestMapChangesResultType(t *testing.T) {
	show := fold.Map(sumInt(), strconv.Itoa)
	if got := fold.RunSlice(show, 1, 2, 3); got != "6" {
		t.Fatalf("mapped fold = %q; want %q", got, "6")
	}
}

func TestMapDoesNotTouchTraversal(t *testing.T) {
	calls := 0
	f := fold.New(func(s, a int) int {
		calls++
		return s + a
	}, 0, func(s int) int { return s })
	_ = fold.RunSlice(fold.Map(f, func(x int) int { return -x }), 1, 2, 3)
	if calls != 3 {
		t.Fatalf("step ran %d times under Map; want 3", calls)
	}
}

func TestContramapBeforeLaw(t *testing.T) {
	parse := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}
	zs := []string{"1", "2", "3"}
	left := fold.RunSlice(fold.Contramap(sumInt(), parse), zs...)
	mapped := make([]int, len(zs))
	for i, z := range zs {
		mapped[i] = parse(z)
	}
	right := fold.RunSlice(sumInt(), mapped...)
	if left != right {
		t.Fatalf("map-before law: %d != %d", left, right)
	}
}

func TestContramapThenMap(t *testing.T) {
	// string lengths in, summed, rendered back out.
	f := fold.Map(fold.Contramap(sumInt(), func(s string) int { return len(s) }), strconv.Itoa)
	if got := fold.RunSlice(f, "ab", "cde", "f"); got != "6" {
		t.Fatalf("contramap+map = %q; want %q", got, "6")
	}
}
