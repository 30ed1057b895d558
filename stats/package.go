// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats is a grab bag of statistical routines used for analyzing
// dice rolls and similar discrete sums.
package stats // import "github.com/roll-phi/go-dicemath/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
