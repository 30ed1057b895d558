package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/roll-phi/go-dicemath/stats"
)

// barWidth is the length of a full-scale ASCII bar.
const barWidth = 60

// bar returns an ASCII bar for p on a scale where max fills the
// whole width.
func bar(p, max float64) string {
	n := int(p / max * barWidth)
	if n < 0 {
		n = 0
	}
	return strings.Repeat("*", n)
}

// FprintPDF prints a rough ASCII rendering of the probability
// density of dist to w, sampled evenly across the distribution's
// bounds.
func FprintPDF(w io.Writer, dist stats.Dist) {
	const rows = 20

	lo, hi := dist.Bounds()
	xs := make([]float64, rows)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(rows-1)
	}
	ys := dist.PDFEach(xs)

	max := 0.0
	for _, y := range ys {
		max = math.Max(max, y)
	}
	if !(max > 0) {
		return
	}
	for i, y := range ys {
		fmt.Fprintf(w, "%10.4g %s\n", xs[i], bar(y, max))
	}
}
