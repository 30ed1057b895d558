// dist describes distributions of dice sums and of observed numbers.
//
// With a dice expression argument such as 3d6 or 2d10+5, dist prints
// the exact distribution of the sum: one line per outcome with its
// count, probability, and cumulative probability. If numbers are
// piped on standard input as well, dist reads them as observed sums
// and tests how plausibly they were rolled from that distribution.
//
// With no arguments, dist reads newline-separated numbers from stdin
// and describes their distribution.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/roll-phi/go-dicemath/dice"
	"github.com/roll-phi/go-dicemath/stats"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: dist [dice expression]")
		os.Exit(1)
	}

	if len(os.Args) == 2 {
		r, err := dice.Parse(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, "usage: dist [dice expression]")
			os.Exit(1)
		}
		d, err := stats.NewDiceSumDist(r)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		printDice(os.Stdout, d)
		if stdinPiped() {
			fmt.Println()
			compareRolls(d, readInput(os.Stdin))
		}
		return
	}

	describe(readInput(os.Stdin))
}

// printDice prints the exact distribution of the dice sum d: a
// header with its support and moments, then a table with one line
// per outcome, then how closely the continuity-corrected normal
// approximation tracks the table.
func printDice(w io.Writer, d *stats.DiceSumDist) {
	r := d.Roll
	lo, hi := r.Min(), r.Max()
	fmt.Fprintf(w, "%v: %d outcomes %d-%d  mean %.6g  std dev %.6g\n",
		r, hi-lo+1, lo, hi, d.Mean(), d.StdDev())
	fmt.Fprintln(w)

	// Size the columns to their widest entries. The counts are
	// widest in the middle of the table.
	totalw := len(strconv.Itoa(hi))
	if n := len(strconv.Itoa(lo)); n > totalw {
		totalw = n
	}
	countw, maxP := 0, 0.0
	for k := lo; k <= hi; k++ {
		if n := len(d.Count(k).String()); n > countw {
			countw = n
		}
		maxP = math.Max(maxP, d.PMF(float64(k)))
	}
	for k := lo; k <= hi; k++ {
		p := d.PMF(float64(k))
		fmt.Fprintf(w, "%*d %*s %7.3f%% %8.3f%%  %s\n",
			totalw, k, countw, d.Count(k), p*100, d.CDF(float64(k))*100, bar(p, maxP))
	}
	fmt.Fprintln(w)

	norm := d.NormalApprox()
	worst, at := 0.0, lo
	for k := lo; k <= hi; k++ {
		approx := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)
		if e := math.Abs(approx - d.PMF(float64(k))); e > worst {
			worst, at = e, k
		}
	}
	fmt.Fprintf(w, "normal approximation: worst outcome error %.2g%% at %d\n", worst*100, at)
}

// compareRolls describes the observed roll sums in s and tests them
// against the exact distribution d.
func compareRolls(d *stats.DiceSumDist, s stats.Sample) {
	s.Sort()

	fmt.Printf("observed: N %d  mean %.6g  std dev %.6g\n", len(s.Xs), s.Mean(), s.StdDev())
	fmt.Printf("quartiles:")
	for _, q := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fmt.Printf("  %.6g", s.Quantile(q))
	}
	fmt.Println()

	res, err := stats.ZTest(s.Xs, d.Mean(), d.StdDev())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("z test: z %+.3f  p %.4g\n", res.Z, res.P)

	ci := stats.QuantileCI(len(s.Xs), 0.5, 0.95)
	cilo, cihi := ci.FromSample(s)
	fmt.Printf("median: %.6g  95%% CI [%.6g, %.6g]  (%.3g%% actual)\n",
		s.Quantile(0.5), cilo, cihi, ci.Confidence*100)
}

// describe summarizes the sample s: moments, a quantile table, and a
// kernel density estimate.
func describe(s stats.Sample) {
	s.Sort()

	fmt.Printf("N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
	gmean := s.GeoMean()
	if !math.IsNaN(gmean) {
		fmt.Printf("  gmean %.6g", gmean)
	}
	fmt.Printf("  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())
	fmt.Println()

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Printf("%8s %.6g\n", label, s.Quantile(float64(p)/100))
	}
	fmt.Println()

	// Kernel density estimate.
	FprintPDF(os.Stdout, stats.KDE{}.From(s))
}

// stdinPiped reports whether stdin is a pipe or a file rather than a
// terminal.
func stdinPiped() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice == 0
}

func readInput(r io.Reader) (sample stats.Sample) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(sample.Xs) == 0 {
		fmt.Fprintln(os.Stderr, "no input")
		os.Exit(1)
	}

	return
}
