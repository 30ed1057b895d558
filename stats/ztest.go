// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
)

var (
	// ErrSampleSize is returned by hypothesis tests for samples too
	// small to test.
	ErrSampleSize = errors.New("sample is too small")

	// ErrZeroVariance is returned by hypothesis tests when the
	// hypothesized distribution has zero variance, which makes any
	// deviation of the sample mean infinitely unlikely.
	ErrZeroVariance = errors.New("distribution has zero variance")
)

// A ZTestResult is the result of a one-sample z-test.
type ZTestResult struct {
	// N is the number of observations.
	N int

	// Mean is the observed sample mean.
	Mean float64

	// Z is the test statistic: the distance of the observed mean
	// from the hypothesized mean, in standard errors.
	Z float64

	// P is the two-tailed p-value of the test, the probability of
	// observing a mean at least this far from the hypothesized
	// mean in either direction if the hypothesis holds.
	P float64
}

// ZTest performs a one-sample z-test of the null hypothesis that the
// observations xs are drawn from a population with the given mean and
// standard deviation, against the alternative hypothesis that the
// population mean differs.
//
// The z-test takes the population standard deviation as known rather
// than estimating it from the sample, so it suits checking
// observations against a fully specified distribution, such as rolls
// against the exact distribution of a dice expression. By the central
// limit theorem the sample mean is close to normal even for modest n;
// for discrete distributions over a handful of values, p-values for
// very small n are rough.
//
// ZTest can fail with ErrSampleSize if xs is empty, or
// ErrZeroVariance if sigma is zero, as for a one-sided die.
func ZTest(xs []float64, mean, sigma float64) (*ZTestResult, error) {
	if len(xs) == 0 {
		return nil, ErrSampleSize
	}
	if sigma <= 0 {
		return nil, ErrZeroVariance
	}
	m := Sample{Xs: xs}.Mean()
	z := (m - mean) / (sigma / math.Sqrt(float64(len(xs))))
	p := 2 * math.Min(StdNormal.CDF(z), StdNormal.Survival(z))
	if p > 1 {
		p = 1
	}
	return &ZTestResult{N: len(xs), Mean: m, Z: z, P: p}, nil
}
