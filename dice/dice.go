// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dice computes exact outcome counts for sums of fair dice.
//
// The count of ways n dice with s faces (labeled 1..s) sum to a given
// total is a coefficient of the polynomial (1 + x + … + x^(s-1))^n.
// Package dice computes whole rows of these coefficients in exact
// arbitrary-precision arithmetic, which keeps derived probabilities
// correct even where the counts far exceed the integer range.
package dice

import (
	"errors"
	"math/big"
)

var (
	// ErrSides is returned for dice with no faces.
	ErrSides = errors.New("die must have at least one side")

	// ErrDiceCount is returned for non-positive dice counts.
	ErrDiceCount = errors.New("dice count must be at least one")

	// ErrRowTooLarge is returned when a requested coefficient row
	// exceeds the RowLimit size guard.
	ErrRowTooLarge = errors.New("coefficient row exceeds size limit")
)

// RowLimit bounds the product of dice count and sides for which Row
// will compute a coefficient row.
//
// The guard exists because exact rows become slow and memory-hungry as
// they grow: a row has (sides-1)*n+1 entries and the largest entries
// have on the order of n*log2(sides) bits. The default permits, for
// example, 166 six-sided dice or 500 coins. This is a policy limit,
// not a mathematical one; callers with patience and memory may raise
// it.
var RowLimit = 1000

// An Engine computes and caches coefficient rows for dice with a fixed
// number of sides.
//
// Rows are computed lazily on first request and cached for the
// lifetime of the engine, including the intermediate rows produced by
// the recursive convolution, so each row index is computed at most
// once per engine. An Engine is not safe for concurrent use; callers
// that share one across goroutines must serialize access or give each
// goroutine its own engine.
type Engine struct {
	sides int
	rows  map[int][]*big.Int
}

// NewEngine returns an engine for dice with the given number of sides.
func NewEngine(sides int) (*Engine, error) {
	if sides < 1 {
		return nil, ErrSides
	}
	return &Engine{sides: sides, rows: make(map[int][]*big.Int)}, nil
}

// Sides returns the number of faces on this engine's dice.
func (e *Engine) Sides() int {
	return e.sides
}

// Row returns the coefficient row for n dice: entry i is the exact
// number of ways the dice sum to i+n, for i in 0 through (sides-1)*n.
// The entries of a complete row always sum to sides^n.
//
// The returned slice is shared with the engine's cache: callers must
// not modify it or the integers it points to.
//
// Row fails with ErrDiceCount if n < 1 and with ErrRowTooLarge if
// n*sides exceeds RowLimit.
func (e *Engine) Row(n int) ([]*big.Int, error) {
	if n < 1 {
		return nil, ErrDiceCount
	}
	// Same test as n*e.sides > RowLimit, but immune to overflow for
	// absurd n.
	if n > RowLimit/e.sides {
		return nil, ErrRowTooLarge
	}
	return e.row(n), nil
}

// row computes and caches the coefficient row for n >= 1 dice by
// divide-and-conquer convolution: the row for n dice is the product of
// the rows for the two halves of n. Splitting in half rather than
// peeling one die at a time keeps the recursion depth logarithmic and
// lets the memoized sub-rows serve both sides of the split.
func (e *Engine) row(n int) []*big.Int {
	if r, ok := e.rows[n]; ok {
		return r
	}
	var r []*big.Int
	if n == 1 {
		r = make([]*big.Int, e.sides)
		for i := range r {
			r[i] = big.NewInt(1)
		}
	} else {
		left := n >> 1
		r = convolve(e.row(left), e.row(n-left))
	}
	e.rows[n] = r
	return r
}

// convolve returns the coefficients of the product of the polynomials
// with coefficients a and b.
func convolve(a, b []*big.Int) []*big.Int {
	out := make([]*big.Int, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	var t big.Int
	for i, ai := range a {
		for j, bj := range b {
			t.Mul(ai, bj)
			out[i+j].Add(out[i+j], &t)
		}
	}
	return out
}
