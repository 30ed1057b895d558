// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/big"

	"github.com/roll-phi/go-dicemath/dice"
)

// A DiceSumDist is the exact distribution of the sum of independent
// fair dice, shifted by a constant offset.
//
// The distribution is discrete on the integers from Roll.Min() to
// Roll.Max(). Outcome counts are held as arbitrary-precision
// integers, so probabilities are exact up to one final correctly
// rounded division per query.
type DiceSumDist struct {
	// Roll describes the dice being summed.
	Roll dice.Roll

	counts []*big.Int // counts[i] is the count for total Min()+i
	cum    []*big.Int // cum[i] is the count for totals <= Min()+i
	total  *big.Int   // number of equally likely outcomes, Sides^N
}

// NewDiceSumDist returns the distribution of the sum of r.N fair
// r.Sides-sided dice plus r.Offset.
//
// The underlying outcome-count computation fails for non-positive
// dice or sides and for rolls over the coefficient row size limit;
// those errors are returned unchanged.
func NewDiceSumDist(r dice.Roll) (*DiceSumDist, error) {
	e, err := dice.NewEngine(r.Sides)
	if err != nil {
		return nil, err
	}
	counts, err := e.Row(r.N)
	if err != nil {
		return nil, err
	}
	cum := make([]*big.Int, len(counts))
	run := new(big.Int)
	for i, c := range counts {
		run.Add(run, c)
		cum[i] = new(big.Int).Set(run)
	}
	total := new(big.Int).Exp(big.NewInt(int64(r.Sides)), big.NewInt(int64(r.N)), nil)
	return &DiceSumDist{Roll: r, counts: counts, cum: cum, total: total}, nil
}

// Outcomes returns the total number of equally likely ways the dice
// can land, Sides^N. The result must not be modified.
func (d *DiceSumDist) Outcomes() *big.Int {
	return d.total
}

// Count returns the number of ways the dice can come up with the
// given total. The result must not be modified.
func (d *DiceSumDist) Count(total int) *big.Int {
	i := total - d.Roll.Min()
	if i < 0 || i >= len(d.counts) {
		return big.NewInt(0)
	}
	return d.counts[i]
}

// PMF returns the probability that the dice total exactly int(k).
func (d *DiceSumDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	i := ki - d.Roll.Min()
	if i < 0 || i >= len(d.counts) {
		return 0
	}
	f, _ := new(big.Rat).SetFrac(d.counts[i], d.total).Float64()
	return f
}

// CDF returns the probability that the dice total at most k.
func (d *DiceSumDist) CDF(k float64) float64 {
	i := int(math.Floor(k)) - d.Roll.Min()
	if i < 0 {
		return 0
	}
	if i >= len(d.cum) {
		return 1
	}
	f, _ := new(big.Rat).SetFrac(d.cum[i], d.total).Float64()
	return f
}

// Step returns 1: adjacent totals differ by one pip.
func (d *DiceSumDist) Step() float64 {
	return 1
}

// Bounds returns the smallest and largest attainable totals.
func (d *DiceSumDist) Bounds() (float64, float64) {
	return float64(d.Roll.Min()), float64(d.Roll.Max())
}

// Mean returns the expected total, N(S+1)/2 plus the offset.
func (d *DiceSumDist) Mean() float64 {
	return float64(d.Roll.N)*float64(d.Roll.Sides+1)/2 + float64(d.Roll.Offset)
}

// Variance returns the variance of the total, N(S²-1)/12.
func (d *DiceSumDist) Variance() float64 {
	s := float64(d.Roll.Sides)
	return float64(d.Roll.N) * (s*s - 1) / 12
}

// StdDev returns the standard deviation of the total.
func (d *DiceSumDist) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// NormalApprox returns the normal approximation of d by moment
// matching.
//
// Because the dice sum is discrete and the normal distribution is
// continuous, the caller must apply a continuity correction when
// using this approximation. If d is the dice sum and n is the normal
// approximation, operations map as follows:
//
//	d.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	d.CDF(k) => n.CDF(k+0.5)
func (d *DiceSumDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: d.StdDev()}
}
