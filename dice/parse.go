// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDiceSpec is returned for expressions that do not parse as dice
// notation.
var ErrDiceSpec = errors.New("malformed dice expression")

// A Roll describes a dice expression: N dice with Sides faces each,
// summed, plus a constant Offset.
type Roll struct {
	N, Sides, Offset int
}

// Min returns the smallest total r can produce.
func (r Roll) Min() int { return r.N + r.Offset }

// Max returns the largest total r can produce.
func (r Roll) Max() int { return r.N*r.Sides + r.Offset }

// String formats r in NdS±K notation.
func (r Roll) String() string {
	s := fmt.Sprintf("%dd%d", r.N, r.Sides)
	if r.Offset > 0 {
		s += "+" + strconv.Itoa(r.Offset)
	} else if r.Offset < 0 {
		s += strconv.Itoa(r.Offset)
	}
	return s
}

// Parse parses a dice expression in NdS, NdS+K, or NdS-K notation,
// for example "3d6", "d20", or "2d10+5". The count defaults to one
// die when omitted. Case and surrounding space are ignored.
//
// Parse fails with ErrDiceSpec for expressions that do not scan, and
// with ErrDiceCount or ErrSides for counts or sides outside their
// domains.
func Parse(expr string) (Roll, error) {
	count, rest, ok := strings.Cut(strings.ToLower(strings.TrimSpace(expr)), "d")
	if !ok {
		return Roll{}, ErrDiceSpec
	}
	r := Roll{N: 1}
	if count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return Roll{}, ErrDiceSpec
		}
		r.N = n
	}
	sides := rest
	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		sides = rest[:i]
		k, err := strconv.Atoi(rest[i:])
		if err != nil {
			return Roll{}, ErrDiceSpec
		}
		r.Offset = k
	}
	s, err := strconv.Atoi(sides)
	if err != nil {
		return Roll{}, ErrDiceSpec
	}
	r.Sides = s
	if r.N < 1 {
		return Roll{}, ErrDiceCount
	}
	if r.Sides < 1 {
		return Roll{}, ErrSides
	}
	return r, nil
}
