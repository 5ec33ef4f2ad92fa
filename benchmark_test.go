// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold_test

import (
	"testing"

	"code.hybscloud.com/fold"
)

const benchLen = 1024

func benchInput() []float64 {
	xs := make([]float64, benchLen)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// BenchmarkRunSum measures the bare interpreter over a plain sum.
func BenchmarkRunSum(b *testing.B) {
	xs := benchInput()
	f := fold.Sum[float64]()
	for b.Loop() {
		_ = fold.RunSlice(f, xs...)
	}
}

// BenchmarkZipSumCount measures the single-pass composition overhead
// against running two folds.
func BenchmarkZipSumCount(b *testing.B) {
	xs := benchInput()
	f := fold.Zip(fold.Sum[float64](), fold.Count[float64, float64]())
	for b.Loop() {
		_ = fold.RunSlice(f, xs...)
	}
}

// BenchmarkMean measures the composed mean (Ap over Sum and Count).
func BenchmarkMean(b *testing.B) {
	xs := benchInput()
	f := fold.Mean[float64]()
	for b.Loop() {
		_ = fold.RunSlice(f, xs...)
	}
}

// BenchmarkVariance measures the Welford accumulator.
func BenchmarkVariance(b *testing.B) {
	xs := benchInput()
	f := fold.Variance[float64]()
	for b.Loop() {
		_ = fold.RunSlice(f, xs...)
	}
}

// BenchmarkFeedResume measures capture and resumption of mid-traversal
// state.
func BenchmarkFeedResume(b *testing.B) {
	xs := benchInput()
	f := fold.Sum[float64]()
	for b.Loop() {
		g := fold.FeedSlice(f, xs[:benchLen/2]...)
		_ = fold.RunSlice(g, xs[benchLen/2:]...)
	}
}

// BenchmarkExtract measures observation without input.
func BenchmarkExtract(b *testing.B) {
	f := fold.FeedSlice(fold.Sum[float64](), benchInput()...)
	for b.Loop() {
		_ = fold.Extract(f)
	}
}
