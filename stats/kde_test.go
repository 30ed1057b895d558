// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestKDESinglePoint(t *testing.T) {
	// The estimate for one sample point is the kernel itself.
	d := KDE{Bandwidth: 2}.From(Sample{Xs: []float64{5}})
	n := NormalDist{Mu: 5, Sigma: 2}
	for x := -3.0; x <= 13; x += 0.5 {
		if want, got := n.PDF(x), d.PDF(x); !aeq(want, got) {
			t.Errorf("want PDF(%v)=%v, got %v", x, want, got)
		}
		if want, got := n.CDF(x), d.CDF(x); !aeq(want, got) {
			t.Errorf("want CDF(%v)=%v, got %v", x, want, got)
		}
	}

	lo, hi := d.Bounds()
	if !(-2 < lo && lo < 0 && 10 < hi && hi < 12) {
		t.Errorf("want bounds near [-1.2,11.2], got [%v,%v]", lo, hi)
	}
}

func TestKDEMixture(t *testing.T) {
	d := KDE{Bandwidth: 1}.From(Sample{Xs: []float64{0, 10}})
	for _, x := range []float64{-2, 0, 1, 5, 9.5, 12} {
		want := (StdNormal.PDF(x) + StdNormal.PDF(x-10)) / 2
		if got := d.PDF(x); !aeq(want, got) {
			t.Errorf("want PDF(%v)=%v, got %v", x, want, got)
		}
	}
	if got := d.CDF(5); !aeq(0.5, got) {
		t.Errorf("want CDF(5)=0.5, got %v", got)
	}

	// Quantile queries invert the CDF numerically.
	for _, p := range []float64{0.1, 0.25, 0.5, 0.9} {
		x := d.InvCDF(p)
		if e := math.Abs(d.CDF(x) - p); e > 1e-9 {
			t.Errorf("CDF(InvCDF(%v)) off by %v", p, e)
		}
	}
	if got := d.InvCDF(0); !math.IsInf(got, -1) {
		t.Errorf("want InvCDF(0)=-Inf, got %v", got)
	}
	if got := d.InvCDF(2); !math.IsNaN(got) {
		t.Errorf("want InvCDF(2)=NaN, got %v", got)
	}

	// Weights skew the mixture.
	w := KDE{Bandwidth: 1}.From(Sample{Xs: []float64{0, 10}, Weights: []float64{3, 1}})
	if want, got := 0.75*StdNormal.PDF(0), w.PDF(0); !aeq(want, got) {
		t.Errorf("want weighted PDF(0)=%v, got %v", want, got)
	}
	if got := w.CDF(5); !aeq(0.75, got) {
		t.Errorf("want weighted CDF(5)=0.75, got %v", got)
	}
}

func TestKDEDeltaKernel(t *testing.T) {
	// A delta kernel turns the estimate into the empirical CDF.
	d := KDE{Kernel: DeltaKernel}.From(Sample{Xs: []float64{1, 2, 2, 4}})
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		0.9: 0,
		1:   0.25,
		1.5: 0.25,
		2:   0.75,
		3.9: 0.75,
		4:   1,
		5:   1,
	})
	// The median is pinned to the doubled point.
	if got := d.InvCDF(0.5); !aeq(2, got) {
		t.Errorf("want InvCDF(0.5)=2, got %v", got)
	}
}

func TestKDEBounded(t *testing.T) {
	// Half-bounded support reflects the spilled weight back in.
	d := KDE{Bandwidth: 1, BoundaryMin: 0, BoundaryMax: math.Inf(1)}.
		From(Sample{Xs: []float64{0.5}})
	if got := d.PDF(-0.1); got != 0 {
		t.Errorf("want PDF(-0.1)=0, got %v", got)
	}
	if got := d.CDF(-0.1); got != 0 {
		t.Errorf("want CDF(-0.1)=0, got %v", got)
	}
	x := 0.2
	if want, got := StdNormal.PDF(x-0.5)+StdNormal.PDF(-x-0.5), d.PDF(x); !aeq(want, got) {
		t.Errorf("want PDF(%v)=%v, got %v", x, want, got)
	}
	if want, got := StdNormal.CDF(2.5)-StdNormal.CDF(-3.5), d.CDF(3); !aeq(want, got) {
		t.Errorf("want CDF(3)=%v, got %v", want, got)
	}
	// No mass escapes.
	if got := d.CDF(50); !aeq(1, got) {
		t.Errorf("want CDF(50)=1, got %v", got)
	}

	// Doubly-bounded support folds the tails in from both ends.
	db := KDE{Bandwidth: 0.8, BoundaryMin: 0, BoundaryMax: 3}.
		From(Sample{Xs: []float64{1, 2}})
	if got := db.CDF(3 - 1e-9); !aeq(1, got) {
		t.Errorf("want CDF(3⁻)=1, got %v", got)
	}
	if got := db.CDF(3); got != 1 {
		t.Errorf("want CDF(3)=1, got %v", got)
	}
	prev := 0.0
	for x := 0.0; x <= 3; x += 0.125 {
		c := db.CDF(x)
		if c < prev {
			t.Errorf("CDF decreased from %v to %v at %v", prev, c, x)
		}
		prev = c
		if x < 3 && db.PDF(x) <= 0 {
			t.Errorf("want PDF(%v)>0, got %v", x, db.PDF(x))
		}
	}
	// Quantiles stay inside the support.
	for _, p := range []float64{0.05, 0.5, 0.95} {
		x := db.InvCDF(p)
		if !(0 <= x && x < 3) {
			t.Errorf("InvCDF(%v)=%v outside support", p, x)
		}
		if e := math.Abs(db.CDF(x) - p); e > 1e-9 {
			t.Errorf("CDF(InvCDF(%v)) off by %v", p, e)
		}
	}
}

func TestKDEDefaultBandwidth(t *testing.T) {
	s := Sample{Xs: []float64{10, 12, 15, 20, 21}}
	if h := BandwidthScott(s); !(0 < h && h < 10) {
		t.Errorf("unreasonable bandwidth %v", h)
	}
	if h, hs := BandwidthScott(s), BandwidthSilverman(s); h > hs+1e-12 {
		t.Errorf("Scott chose %v over Silverman's %v", h, hs)
	}

	d := KDE{}.From(s)
	if got := d.CDF(35); got <= 0.99 {
		t.Errorf("want CDF(35) near 1, got %v", got)
	}
	if lo, hi := d.Bounds(); !(lo < 10 && hi > 21) {
		t.Errorf("want bounds covering the data, got [%v,%v]", lo, hi)
	}

	defer func() {
		if recover() == nil {
			t.Error("want panic for mismatched weights")
		}
	}()
	KDE{}.From(Sample{Xs: []float64{1}, Weights: []float64{1, 2}})
}
