// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/roll-phi/go-dicemath/mathx"
)

// BinomialDist is a binomial distribution: the number of successes
// in N independent yes/no trials.
type BinomialDist struct {
	// N is the number of trials. N >= 0.
	//
	// With N=1, this is the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// PMF returns the probability of exactly int(k) successes.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	return mathx.Choose(d.N, ki) * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
}

// CDF returns the probability of int(k) or fewer successes.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}
	// The binomial CDF is the right tail of the beta distribution.
	return mathx.BetaInc(1-d.P, float64(d.N-ki), k+1)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// Mode returns the number of successes with the highest probability.
// When two adjacent counts tie, which happens when (N+1)P lands on an
// integer, Mode returns the smaller of the two.
func (d BinomialDist) Mode() int {
	if d.P == 0 {
		return 0
	}
	return int(math.Ceil(float64(d.N+1)*d.P)) - 1
}

// NormalApprox returns the normal approximation of d by moment
// matching.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. If b is the binomial
// distribution and n is the normal approximation, operations map as
// follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
