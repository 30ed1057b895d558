// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqTable(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			// "%f" precision
			if math.Abs(a[i][j]-b[i][j]) >= 0.000001 {
				return false
			}
		}
	}
	return true
}

// testFunc checks f against a table of expected values. An expected
// NaN must be returned as NaN.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()

	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
	}
}

// testDiscreteCDF checks that the CDF of dist is the running sum of
// its PMF, including between the distribution's steps and beyond its
// bounds.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()

	low, high := dist.Bounds()
	step := dist.Step()
	want := map[float64]float64{low - 0.1: 0, high: 1}
	sum := 0.0
	for x := low; x < high; x += step {
		sum += dist.PMF(x)
		want[x] = sum
		want[x+step/2] = sum
	}

	testFunc(t, name, dist.CDF, want)
}
