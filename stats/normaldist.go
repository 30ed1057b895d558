// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/roll-phi/go-dicemath/mathx"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution.
var StdNormal = NormalDist{0, 1}

// invSqrt2Pi is 1/√(2π), the height of the standard normal PDF at 0.
const invSqrt2Pi = 0.3989422804014327

const (
	// invCDFTol is the absolute CDF error at which the InvCDF
	// iteration stops. It is a couple ulps of probabilities near
	// one half; tail probabilities converge far tighter.
	invCDFTol = 2.3e-16

	// invCDFSteps caps the InvCDF iteration. Forty steps cover any
	// probability down to about 1e-15 per side; beyond that the
	// iteration still creeps toward the tail when the cap ends it.
	invCDFSteps = 40
)

func (d NormalDist) PDF(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / d.Sigma
}

func (d NormalDist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	if d.Mu == 0 && d.Sigma == 1 {
		// Standard normal fast path.
		for i, x := range xs {
			res[i] = math.Exp(-x*x/2) * invSqrt2Pi
		}
	} else {
		a := -1 / (2 * d.Sigma * d.Sigma)
		b := invSqrt2Pi / d.Sigma
		for i, x := range xs {
			x -= d.Mu
			res[i] = math.Exp(x*x*a) * b
		}
	}
	return res
}

// CDF returns the probability that a sample from d is at most x. It
// follows the left tail accurately: the complementary error function
// keeps relative precision where 1-CDF(-x) would round to zero.
func (d NormalDist) CDF(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return mathx.Erfc(-z/math.Sqrt2) / 2
}

func (d NormalDist) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}

// Survival returns 1 - CDF(x), the probability that a sample from d
// exceeds x, with full relative precision in the right tail.
func (d NormalDist) Survival(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return mathx.Erfc(z/math.Sqrt2) / 2
}

// InvCDF returns the x such that CDF(x) = p. It returns -Inf for
// p = 0, +Inf for p = 1, and NaN for p outside [0, 1].
//
// The root is found by Newton iteration on the CDF starting from the
// mean, stopped once the CDF is within invCDFTol of p. Probabilities
// closer to 0 or 1 than about 1e-15 exhaust the step cap first and
// come back with reduced accuracy.
func (d NormalDist) InvCDF(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0 || p > 1:
		return nan
	case p == 0:
		return -inf
	case p == 1:
		return inf
	}
	x := 0.0
	for i := 0; i < invCDFSteps; i++ {
		e := StdNormal.CDF(x) - p
		if math.Abs(e) <= invCDFTol {
			break
		}
		x -= e / StdNormal.PDF(x)
	}
	return d.Mu + x*d.Sigma
}

func (d NormalDist) InvCDFEach(ps []float64) []float64 {
	res := make([]float64, len(ps))
	for i, p := range ps {
		res[i] = d.InvCDF(p)
	}
	return res
}

// Bounds returns the ±3σ interval around the mean, which holds about
// 99.7% of the distribution's weight.
func (d NormalDist) Bounds() (float64, float64) {
	return d.Mu - 3*d.Sigma, d.Mu + 3*d.Sigma
}
