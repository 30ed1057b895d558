// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

const (
	// erfcScale is 1/√π, the leading constant of the asymptotic
	// expansion erfc(x) ~ exp(-x²)/(√π x).
	erfcScale = 0.56418958354775629

	// erfcShift shifts the pole of the leading rational term off the
	// domain so that erfcScale/(x+erfcShift) is finite down to x = 0.
	erfcShift = 2.06955023132914151
)

// erfcTable holds the correction factors of a rational approximation
// to the scaled complementary error function exp(x²)·erfc(x) on
// [0, 30). Each row (a0, a1, a2, a3) contributes a factor
//
//	((x+a0)·x + a1) / ((x+a2)·x + a3)
//
// applied to the leading term erfcScale/(x+erfcShift). Every factor
// tends to 1 as x grows, so the leading term alone carries the tail.
// The nominal error of the full product is below 3e-18 relative;
// evaluated in double precision it is good to a few ulps.
var erfcTable = [...][4]float64{
	{2.711052805917931, 5.8068040272746595, 3.5174311817719333, 12.26894157015889},
	{3.511766552627667, 12.275811771163626, 3.7444393607640745, 8.581251001334032},
	{4.006898019217163, 9.433173919968105, 3.9153685602745893, 6.441104275356726},
	{5.17628307412965, 9.23705066848039, 4.038681728967366, 5.171462133708398},
	{5.993286111606515, 9.310363917462503, 4.113815500393171, 4.495343920916299},
}

// Erfc returns the complementary error function of x.
//
// The result is within a few ulps of the true value. For x ≥ 30 the
// true value is smaller than any positive float64 and Erfc returns 0.
func Erfc(x float64) float64 {
	if x < 0 {
		return 2 - Erfc(-x)
	}
	if x >= 30 {
		return 0
	}
	r := math.Exp(-x*x) * erfcScale / (x + erfcShift)
	for _, q := range erfcTable {
		r *= ((x+q[0])*x + q[1]) / ((x+q[2])*x + q[3])
	}
	return r
}

// Erf returns the error function of x, computed as 1 - Erfc(x). The
// subtraction limits Erf near zero to absolute rather than relative
// accuracy.
func Erf(x float64) float64 {
	return 1 - Erfc(x)
}
