// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

// Choose returns the binomial coefficient of n and k.
//
// The result is exact as long as it fits in the float64 integer range.
// Beyond that it accumulates roundoff of about an ulp per factor, and
// for very large n it may overflow to +Inf.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	// Each partial product is itself a binomial coefficient, so the
	// division below is exact whenever the product is.
	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}
