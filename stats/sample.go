// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Otherwise, it must have the same
	// length as Xs, and all weights must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Bounds returns the smallest and largest values of the sample, or
// NaNs if the sample is empty.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	min, max = s.Xs[0], s.Xs[0]
	for _, x := range s.Xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Weight returns the total weight of the sample. For unweighted
// samples this is the number of points.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	w := 0.0
	for _, wi := range s.Weights {
		w += wi
	}
	return w
}

// Sum returns the weighted sum of the sample.
func (s Sample) Sum() float64 {
	sum := 0.0
	if s.Weights == nil {
		for _, x := range s.Xs {
			sum += x
		}
	} else {
		for i, x := range s.Xs {
			sum += x * s.Weights[i]
		}
	}
	return sum
}

// Mean returns the arithmetic mean of the sample, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return s.Sum() / s.Weight()
}

// GeoMean returns the geometric mean of the sample. All values must
// be positive; otherwise GeoMean returns NaN.
func (s Sample) GeoMean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	logSum, w := 0.0, 0.0
	for i, x := range s.Xs {
		if x <= 0 {
			return nan
		}
		wi := 1.0
		if s.Weights != nil {
			wi = s.Weights[i]
		}
		logSum += wi * math.Log(x)
		w += wi
	}
	return math.Exp(logSum / w)
}

// Variance returns the sample variance with Bessel's correction, or
// NaN if the sample holds less than two points' worth of weight.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 || s.Weight() <= 1 {
		return nan
	}
	mean := s.Mean()
	ss := 0.0
	if s.Weights == nil {
		for _, x := range s.Xs {
			d := x - mean
			ss += d * d
		}
	} else {
		for i, x := range s.Xs {
			d := x - mean
			ss += s.Weights[i] * d * d
		}
	}
	return ss / (s.Weight() - 1)
}

// StdDev returns the sample standard deviation with Bessel's
// correction.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Quantile returns the qth quantile of the sample using the
// median-unbiased estimator of Hyndman and Fan (type 8). q values
// outside [0, 1] return the nearest data bound.
//
// Weighted samples instead return the smallest value whose cumulative
// weight reaches q of the total.
//
// Hyndman, R.J.; Fan, Y. (1996) "Sample Quantiles in Statistical
// Packages". The American Statistician 50(4).
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	if s.Weights == nil {
		n := float64(len(s.Xs))
		h := (n+1./3)*q + 1./3
		if h <= 1 {
			return s.Xs[0]
		}
		if h >= n {
			return s.Xs[len(s.Xs)-1]
		}
		i := int(h) // 1-based
		return s.Xs[i-1] + (h-float64(i))*(s.Xs[i]-s.Xs[i-1])
	}
	target := q * s.Weight()
	cum := 0.0
	for i, w := range s.Weights {
		cum += w
		if cum >= target {
			return s.Xs[i]
		}
	}
	return s.Xs[len(s.Xs)-1]
}

// Copy returns a Sample with a fresh copy of the value and weight
// slices.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	out := Sample{Xs: xs, Sorted: s.Sorted}
	if s.Weights != nil {
		out.Weights = make([]float64, len(s.Weights))
		copy(out.Weights, s.Weights)
	}
	return &out
}

// Sort sorts the sample in place by value, keeping weights attached
// to their points, and returns it.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		if s.Weights == nil {
			sort.Float64s(s.Xs)
		} else {
			sort.Stable(&sampleSorter{s.Xs, s.Weights})
		}
		s.Sorted = true
	}
	return s
}

type sampleSorter struct {
	xs, weights []float64
}

func (p *sampleSorter) Len() int { return len(p.xs) }

func (p *sampleSorter) Less(i, j int) bool { return p.xs[i] < p.xs[j] }

func (p *sampleSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}

// MeanCI returns the sample mean of xs and the bounds of a confidence
// interval for the population mean, assuming the values are roughly
// normal.
//
// A confidence of 0 degenerates to the point estimate, and a
// confidence of 1, or a sample too small to estimate variance from,
// yields an unbounded interval. An empty sample has no mean and MeanCI
// returns NaNs.
func MeanCI(xs []float64, confidence float64) (mean, lo, hi float64) {
	if len(xs) == 0 {
		return nan, nan, nan
	}
	s := Sample{Xs: xs}
	mean = s.Mean()
	if confidence <= 0 {
		return mean, mean, mean
	}
	if confidence >= 1 || len(xs) < 2 {
		return mean, -inf, inf
	}
	se := math.Sqrt(s.Variance() / float64(len(xs)))
	t := TDist{V: float64(len(xs) - 1)}.InvCDF(0.5 + confidence/2)
	return mean, mean - t*se, mean + t*se
}
