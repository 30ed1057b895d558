// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// QuantileCIResult is the confidence interval for a quantile.
type QuantileCIResult struct {
	// Quantile is the quantile of this confidence interval. This
	// is simply a copy of the argument to QuantileCI.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the actual confidence level of this interval.
	// This will be >= the requested confidence.
	Confidence float64

	// LoOrder and HiOrder are the order statistics that bound the
	// confidence interval. By convention, these are 1-based, so
	// given an ordered slice of samples Xs, the CI is
	// Xs[LoOrder-1] to Xs[HiOrder-1].
	//
	// These may be outside the range of the sample, which
	// indicates that the corresponding bound is negative or
	// positive infinity. This can happen, for example, if the
	// sample is too small for a high confidence level, or the
	// quantile is close to 0 or 1.
	LoOrder, HiOrder int

	// Ambiguous indicates that the given confidence interval is
	// ambiguous. In this case, the interval LoOrder+1 to
	// HiOrder+1 has equivalent confidence.
	Ambiguous bool
}

// FromSample returns the confidence interval of q in terms of values
// from a sample. It may return negative or positive infinity if the
// interval lies outside the sample.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64) {
	if s.Weights != nil {
		panic("Cannot compute quantile CI on a weighted sample")
	}
	if len(s.Xs) != q.N {
		panic("Sample size differs from computed quantile CI")
	}

	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	if q.LoOrder < 1 {
		// The sample is too small or the confidence is too high.
		lo = math.Inf(-1)
	} else {
		lo = s.Xs[q.LoOrder-1]
	}
	if q.HiOrder-1 >= len(s.Xs) {
		hi = math.Inf(1)
	} else {
		hi = s.Xs[q.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which a normal
// approximation is used. This is a variable for testing.
//
// Performance-wise, the exact sum and the approximation cross over at
// about n=5, but the approximation isn't very good at low n.
var quantileCIApproxThreshold = 30

// QuantileCI returns the bounds of the confidence interval of the
// q'th quantile in a sample of size n.
//
// Useful background on quantile confidence intervals, including
// worked examples and the continuity correction used here:
//
// https://online.stat.psu.edu/stat415/book/export/html/835
//
// http://www.milefoot.com/math/stat/ci-medians.htm
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	res := QuantileCIResult{N: n, Quantile: q}

	if confidence >= 1 {
		res.Confidence = 1
		res.LoOrder, res.HiOrder = 0, n+1
		return res
	}

	// The sampling distribution of an order statistic is binomial:
	// PMF(k) is the probability that exactly k samples fall below
	// the population quantile. Equivalently, k indexes the gaps
	// between ordered samples, counting the gap from -inf to the
	// first sample as gap 0, and PMF(k) is the probability that
	// the population quantile lands in gap k, between s.Xs[k-1]
	// and s.Xs[k].
	samp := BinomialDist{N: n, P: q}

	var l, r int
	if n <= quantileCIApproxThreshold {
		l, r, res.Confidence, res.Ambiguous = quantileCIExact(samp, confidence)
	} else {
		l, r, res.Confidence, res.Ambiguous = quantileCINormal(samp, confidence)
	}

	// Order 0 and order n+1 stand in for the infinities.
	if l < 0 {
		l = 0
	}
	if r > n+1 {
		r = n + 1
	}
	res.LoOrder, res.HiOrder = l, r
	return res
}

// quantileCIExact sums the exact sampling distribution outward from
// its mode until it covers the requested confidence. It returns the
// half-open order interval [l, r) along with the confidence actually
// accumulated and whether the interval one order higher would cover
// just as well.
func quantileCIExact(samp BinomialDist, confidence float64) (l, r int, actual float64, ambiguous bool) {
	const debug = false

	// Summing terms in decreasing order keeps the interval as
	// tight as possible; the PMF falls off monotonically on both
	// sides of the mode. When two counts tie for the mode, Mode
	// picks the lower one, which keeps the result left-biased.
	x := samp.Mode()
	accum := samp.PMF(float64(x))
	if debug {
		fmt.Printf("exact CI start %d => %v\n", x, accum)
	}

	// [l, r) is the interval summed so far; lp and rp are the
	// probabilities just outside it on each side.
	l, r = x, x+1
	lp, rp := samp.PMF(float64(l-1)), samp.PMF(float64(r))
	ambiguous = rp == accum

	// The lp > 0 || rp > 0 condition stops the loop once there is
	// nothing left to take, in case accumulated rounding keeps
	// accum just short of the confidence level.
	for accum < confidence && (lp > 0 || rp > 0) {
		ambiguous = lp == rp
		if lp >= rp { // Left-bias
			accum += lp
			l--
			lp = samp.PMF(float64(l - 1))
		} else {
			accum += rp
			r++
			rp = samp.PMF(float64(r))
		}
		if debug {
			fmt.Printf("exact CI [%d,%d) => %v\n", l, r, accum)
		}
	}
	return l, r, accum, ambiguous
}

// quantileCINormal bounds the confidence interval using the normal
// approximation of the sampling distribution, with continuity
// correction. Like quantileCIExact, it returns the half-open order
// interval [l, r), the confidence it covers, and whether an equally
// valid interval exists one order over.
func quantileCINormal(samp BinomialDist, confidence float64) (l, r int, actual float64, ambiguous bool) {
	norm := samp.NormalApprox()
	alpha := (1 - confidence) / 2

	// Take the central "confidence" weight of the approximation.
	l1 := norm.InvCDF(alpha)
	r1 := 2*norm.Mu - l1 // Symmetric around the mean.

	// Round [l1, r1] out to the half-integer band edges of the
	// continuity correction: point k of the discrete distribution
	// owns the band [k-0.5, k+0.5]. For example, around a mean of
	// 2, the interval [1.9, 2.1] rounds out to [1.5, 2.5], which
	// is the discrete band [2, 3); [1.4, 2.6] rounds out to
	// [0.5, 3.5], which is [1, 4).
	l = int(math.Floor(math.Floor(l1-0.5)+0.5)) + 1
	r = int(math.Floor(math.Ceil(r1-0.5)+0.5)) + 1

	// The confidence the discrete interval [l, r) really covers is
	//
	//	Pr[l <= X < r] = Pr[X <= r-1] - Pr[X <= l-1]
	//
	// which maps onto the approximation by adding half to each
	// bound for the continuity correction.
	cdf := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	actual = cdf(l, r)

	// The rounded-out interval is symmetric. If trimming the right
	// end still covers the requested confidence, take the tighter
	// left-biased interval.
	if aBiased := cdf(l, r-1); aBiased >= confidence && aBiased < actual {
		actual, ambiguous = aBiased, true
		r--
	}

	if l <= 0 && r >= samp.N+1 {
		// The interval spans the whole sample, so its real
		// confidence is 1 even though the approximation's
		// infinite tails leave the computed CDF short of that.
		actual = 1
		ambiguous = false
	}
	return l, r, actual, ambiguous
}
