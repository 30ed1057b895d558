// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// releq reports whether got is within tol of want, relatively. Exact
// matches pass, including infinities.
func releq(want, got, tol float64) bool {
	if want == got {
		return true
	}
	d := math.Abs(want - got)
	if want == 0 {
		return d < tol
	}
	return d < tol*math.Abs(want)
}
