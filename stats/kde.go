// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// KDE represents options for constructing a kernel density estimate.
//
// Kernel density estimation builds a smooth estimate ƒ̂(x) of an
// unknown distribution ƒ(x) given a sample from that distribution.
// It serves the same purpose as a histogram, but requires no choice
// of bins and produces a continuous distribution. The estimate is
// non-parametric, though the shape it recovers depends heavily on
// the bandwidth, and the default bandwidth estimators assume the
// data is roughly normal.
//
// The zero value of KDE is a reasonable default configuration. Use
// the From method to supply the sample.
type KDE struct {
	// Kernel is the kernel to place at each sample point.
	Kernel KDEKernel

	// Bandwidth is the smoothing bandwidth. If it is zero, the
	// bandwidth is estimated from the sample using a default
	// estimator (currently BandwidthScott).
	Bandwidth float64

	// BoundaryMethod is the boundary correction method. The
	// default is BoundaryReflect; however, the default bounds are
	// effectively +/-inf, which is equivalent to performing no
	// boundary correction.
	BoundaryMethod KDEBoundaryMethod

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the estimate. If both are 0 (their default values), they
	// are treated as +/-inf.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and a robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Quantile(float64) float64
}) float64 {
	iqr := data.Quantile(0.75) - data.Quantile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	} else {
		// Use IQR/1.349 as a robust estimator of the standard
		// deviation of a Gaussian distribution.
		return hScale * (iqr / 1.349)
	}
}

// TODO: Implement the bandwidth estimator from Botev, Grotowski,
// Kroese. (2010) Kernel Density Estimation via Diffusion.

// KDEKernel represents a kernel to use for a KDE.
type KDEKernel int

//go:generate stringer -type=KDEKernel

const (
	GaussianKernel KDEKernel = iota

	// DeltaKernel is a Dirac delta function. The PDF of such a
	// KDE is not well-defined, but the CDF will represent each
	// sample as an instantaneous increase. This kernel ignores
	// bandwidth and never requires boundary correction.
	DeltaKernel
)

// KDEBoundaryMethod represents a boundary correction method for
// constructing a KDE with bounded support.
type KDEBoundaryMethod int

//go:generate stringer -type=KDEBoundaryMethod

const (
	// BoundaryReflect reflects the density estimate at the
	// boundaries. For example, for a KDE with support [0, inf),
	// this is equivalent to ƒ̂ᵣ(x)=ƒ̂(x)+ƒ̂(-x) for x>=0. This is a
	// simple and fast technique, but enforces that ƒ̂ᵣ'(0)=0, so
	// it may not be applicable to all distributions.
	BoundaryReflect KDEBoundaryMethod = iota

	// boundaryNone represents no boundary correction.
	//
	// This is used internally when the bounds are -/+inf.
	boundaryNone
)

// From returns the kernel density estimate for the sample s as a
// continuous distribution.
func (k KDE) From(s Sample) Dist {
	if s.Weights != nil && len(s.Xs) != len(s.Weights) {
		panic("len(xs) != len(weights)")
	}

	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}

	kernel := kdeKernel(nil)
	switch k.Kernel {
	default:
		panic(fmt.Sprint("unknown kernel", k))
	case GaussianKernel:
		kernel = NormalDist{0, h}
	case DeltaKernel:
		kernel = DeltaDist{0}
	}

	// Normalize the boundaries. Unbounded support needs no
	// boundary correction.
	bm := k.BoundaryMethod
	lo, hi := k.BoundaryMin, k.BoundaryMax
	if lo == 0 && hi == 0 {
		lo, hi = math.Inf(-1), math.Inf(1)
	}
	if math.IsInf(lo, -1) && math.IsInf(hi, 1) {
		bm = boundaryNone
	}

	return &kdeDist{kernel, s.Xs, s.Weights, bm, lo, hi}
}

type kdeKernel interface {
	PDFEach(xs []float64) []float64
	CDFEach(xs []float64) []float64
}

type kdeDist struct {
	kernel      kdeKernel
	xs, weights []float64
	bm          KDEBoundaryMethod
	min, max    float64 // Support bounds
}

// normalizedXs returns x - kde.xs. Evaluating kernels shifted by
// kde.xs all at x is equivalent to evaluating one unshifted kernel
// at x - kde.xs.
func (kde *kdeDist) normalizedXs(x float64) []float64 {
	txs := make([]float64, len(kde.xs))
	for i, xi := range kde.xs {
		txs[i] = x - xi
	}
	return txs
}

func (kde *kdeDist) PDF(x float64) float64 {
	if x < kde.min || x >= kde.max {
		return 0
	}

	y := func(x float64) float64 {
		// Shift kernel to each of kde.xs and evaluate at x.
		// Kernel samples are weighted like the points they
		// sit on.
		ys := kde.kernel.PDFEach(kde.normalizedXs(x))
		wys := Sample{Xs: ys, Weights: kde.weights}
		return wys.Sum() / wys.Weight()
	}
	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) + y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + y(2*kde.max-x)
		} else {
			d := 2 * (kde.max - kde.min)
			w := 2 * (x - kde.min)
			return series(func(n float64) float64 {
				// Points >= x
				return y(x+n*d) + y(x+n*d-w)
			}) + series(func(n float64) float64 {
				// Points < x
				return y(x-(n+1)*d+w) + y(x-(n+1)*d)
			})
		}
	}
}

func (kde *kdeDist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = kde.PDF(x)
	}
	return res
}

func (kde *kdeDist) CDF(x float64) float64 {
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}

	y := func(x float64) float64 {
		// Shift kernel integral to each of kde.xs and evaluate
		// at x.
		ys := kde.kernel.CDFEach(kde.normalizedXs(x))
		wys := Sample{Xs: ys, Weights: kde.weights}
		return wys.Sum() / wys.Weight()
	}
	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) - y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + (1 - y(2*kde.max-x))
		} else {
			d := 2 * (kde.max - kde.min)
			w := 2 * (x - kde.min)
			return series(func(n float64) float64 {
				// Windows >= x-w
				return y(x+n*d) - y(x+n*d-w)
			}) + series(func(n float64) float64 {
				// Windows < x-w
				return y(x-(n+1)*d) - y(x-(n+1)*d-w)
			})
		}
	}
}

func (kde *kdeDist) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = kde.CDF(x)
	}
	return res
}

// InvCDF answers quantile queries by bisecting the CDF, so it is
// considerably more expensive than CDF. For y of exactly 0 or 1 it
// returns the edge of the support, which is infinite if the estimate
// is unbounded on that side.
func (kde *kdeDist) InvCDF(y float64) float64 {
	switch {
	case math.IsNaN(y) || y < 0 || y > 1:
		return nan
	case y == 0:
		return kde.min
	case y == 1:
		return kde.max
	}

	// Bounds covers most of the weight, but the root may sit in
	// the tails, so widen the bracket until the CDF straddles y.
	lo, hi := kde.Bounds()
	for kde.CDF(lo) > y {
		lo -= hi - lo
	}
	for kde.CDF(hi) < y {
		hi += hi - lo
	}
	// The CDF may be discontinuous (a delta kernel), so accept
	// the bisection converging on a jump rather than a root.
	x, _ := bisect(func(x float64) float64 { return kde.CDF(x) - y }, lo, hi, 1e-12)
	return x
}

func (kde *kdeDist) InvCDFEach(ys []float64) []float64 {
	res := make([]float64, len(ys))
	for i, y := range ys {
		res[i] = kde.InvCDF(y)
	}
	return res
}

func (kde *kdeDist) Bounds() (low float64, high float64) {
	// Start from the lowest and highest samples.
	lowX, highX := Sample{Xs: kde.xs, Weights: kde.weights}.Bounds()
	if lowX == highX {
		lowX -= 1
		highX += 1
	}

	// Find the end points that contain 99% of the CDF's weight.
	// Since bisect requires that the root be bracketed, start by
	// expanding our range if necessary.
	const (
		lowY      = 0.005
		highY     = 0.995
		tolerance = 0.001
	)
	for kde.CDF(lowX) > lowY {
		lowX -= highX - lowX
	}
	for kde.CDF(highX) < highY {
		highX += highX - lowX
	}
	// Explicitly accept discontinuities, since we may be using a
	// discontiguous kernel.
	low, _ = bisect(func(x float64) float64 { return kde.CDF(x) - lowY }, lowX, highX, tolerance)
	high, _ = bisect(func(x float64) float64 { return kde.CDF(x) - highY }, lowX, highX, tolerance)

	// Expand width by 20% to give some margins
	width := high - low
	low, high = low-0.1*width, high+0.1*width

	// Limit to bounds
	low, high = math.Max(low, kde.min), math.Min(high, kde.max)

	return
}
