// Package stats summarizes dream lengths and turns them into day scores.
package stats

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"

	"github.com/cognicore/dreamlog/pkg/dreamlog/internalerr"
)

// DefaultCharsPerLine approximates one line of a journal page.
const DefaultCharsPerLine = 95

// MADScale converts a median absolute deviation to the standard deviation
// of a normal distribution.
const MADScale = 1.4826

// EstimateLines returns the number of lines text fills at charsPerLine
// characters per line.
func EstimateLines(text string, charsPerLine int) int {
	if charsPerLine <= 0 {
		charsPerLine = DefaultCharsPerLine
	}
	n := utf8.RuneCountInString(text)
	return (n + charsPerLine - 1) / charsPerLine
}

// Summary describes a sample of dream lengths in lines.
type Summary struct {
	Count       int
	Mean        float64
	Median      float64
	SD          float64 // population
	MAD         float64
	ScaledMAD   float64
	Q1          float64
	Q3          float64
	IQR         float64
	MeanPlusSD  float64
	MeanMinusSD float64 // floored at 0
}

// Summarize computes the summary of lines.
func Summarize(lines []int) (Summary, error) {
	if len(lines) == 0 {
		return Summary{}, fmt.Errorf("summarize: %w", internalerr.ErrNoDreams)
	}
	sorted := make([]float64, len(lines))
	for i, l := range lines {
		sorted[i] = float64(l)
	}
	sort.Float64s(sorted)

	mean, sd := stat.PopMeanStdDev(sorted, nil)
	median := Median(sorted)

	deviations := make([]float64, len(sorted))
	for i, v := range sorted {
		deviations[i] = math.Abs(v - median)
	}
	sort.Float64s(deviations)
	mad := Median(deviations)

	q1 := Percentile(sorted, 25)
	q3 := Percentile(sorted, 75)

	return Summary{
		Count:       len(lines),
		Mean:        mean,
		Median:      median,
		SD:          sd,
		MAD:         mad,
		ScaledMAD:   mad * MADScale,
		Q1:          q1,
		Q3:          q3,
		IQR:         q3 - q1,
		MeanPlusSD:  mean + sd,
		MeanMinusSD: math.Max(mean-sd, 0),
	}, nil
}

// Median returns the middle of sorted, averaging the two middle values for
// even lengths.
func Median(sorted []float64) float64 {
	n := len(sorted)
	switch {
	case n == 0:
		return 0
	case n%2 == 1:
		return sorted[n/2]
	default:
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
}

// Percentile interpolates linearly between the closest ranks of sorted at
// index p/100*(n-1).
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	index := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[lower]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
