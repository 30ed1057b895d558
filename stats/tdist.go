// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/roll-phi/go-dicemath/mathx"
)

// TDist is a Student's t-distribution with V degrees of freedom.
type TDist struct {
	V float64
}

func (t TDist) PDF(x float64) float64 {
	lg1, _ := math.Lgamma(t.V / 2)
	lg2, _ := math.Lgamma((t.V + 1) / 2)
	return math.Exp(lg2-lg1) /
		math.Sqrt(t.V*math.Pi) *
		math.Pow(1+(x*x)/t.V, -(t.V+1)/2)
}

func (t TDist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = t.PDF(x)
	}
	return res
}

func (t TDist) CDF(x float64) float64 {
	if x == 0 {
		return 0.5
	} else if x > 0 {
		return 1 - t.CDF(-x)
	} else if x < 0 {
		return mathx.BetaInc(t.V/(t.V+x*x), t.V/2, 0.5) / 2
	}
	return nan
}

func (t TDist) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = t.CDF(x)
	}
	return res
}

// InvCDF returns the x such that CDF(x) = p. It returns -Inf for
// p = 0, +Inf for p = 1, and NaN for p outside [0, 1].
//
// The root is bracketed by doubling out from zero and then bisected.
// Probabilities within an ulp of 0 or 1 saturate to the infinities.
func (t TDist) InvCDF(p float64) float64 {
	if !(t.V > 0) {
		return nan
	}
	switch {
	case math.IsNaN(p) || p < 0 || p > 1:
		return nan
	case p == 0:
		return -inf
	case p == 1:
		return inf
	case p == 0.5:
		return 0
	case p < 0.5:
		return -t.InvCDF(1 - p)
	}
	hi := 1.0
	for t.CDF(hi) < p {
		hi *= 2
		if math.IsInf(hi, 1) {
			return inf
		}
	}
	x, _ := bisect(func(x float64) float64 { return t.CDF(x) - p }, 0, hi, 1e-14)
	return x
}

func (t TDist) InvCDFEach(ps []float64) []float64 {
	res := make([]float64, len(ps))
	for i, p := range ps {
		res[i] = t.InvCDF(p)
	}
	return res
}

// Bounds returns an interval covering most of the distribution's
// weight. The t-distribution's tails thicken as V falls, so the
// interval widens accordingly.
func (t TDist) Bounds() (float64, float64) {
	b := t.InvCDF(0.995)
	return -b, b
}
