package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/cognicore/dreamlog/pkg/dreamlog/internalerr"
	"github.com/cognicore/dreamlog/pkg/dreamlog/journal"
)

// Threshold methods.
const (
	MethodMedianIQR       = "median_iqr"
	MethodMedianScaledMAD = "median_scaled_mad"
	MethodMeanSD          = "mean_sd"
)

// FragmentScore is the fixed score of a dream fragment.
const FragmentScore = 0.5

// Thresholds bound a typical dream length. A dream of Lower lines scores 1,
// one of Upper lines scores 2.
type Thresholds struct {
	Lower float64
	Upper float64
}

// NewThresholds derives thresholds from s with method.
func NewThresholds(s Summary, method string) (Thresholds, error) {
	switch strings.ToLower(method) {
	case MethodMedianIQR, "":
		return Thresholds{Lower: s.Median, Upper: s.Median + s.IQR}, nil
	case MethodMedianScaledMAD:
		return Thresholds{Lower: s.Median, Upper: s.Median + s.ScaledMAD}, nil
	case MethodMeanSD:
		return Thresholds{Lower: s.Mean, Upper: s.MeanPlusSD}, nil
	}
	return Thresholds{}, fmt.Errorf("threshold method %q: %w", method, internalerr.ErrInvalidConfig)
}

func (t Thresholds) denom() float64 {
	d := t.Upper - t.Lower
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 1
	}
	return d
}

// Score returns the continuous score of a dream of lines lines.
func (t Thresholds) Score(lines int) float64 {
	return 1 + (float64(lines)-t.Lower)/t.denom()
}

// RoundHalf rounds v to the nearest multiple of 0.5, halves rounding up.
func RoundHalf(v float64) float64 {
	return math.Floor(v*2+0.5) / 2
}

// DreamScore is the score of one entry.
type DreamScore struct {
	Title    string
	Lines    int
	Fragment bool
	Raw      float64
	Rounded  float64
}

// DayScore is the scored content of one day.
type DayScore struct {
	Title  string
	Index  int
	Dreams []DreamScore
	// Total sums the rounded dream scores.
	Total float64
}

// ScoreDay scores every entry of day. Fragments score FragmentScore; other
// dreams are rounded to the nearest half before summing.
func ScoreDay(day journal.Day, t Thresholds, charsPerLine int) DayScore {
	out := DayScore{Title: day.Title, Index: day.Index}
	for _, e := range day.Entries {
		ds := DreamScore{Title: e.Title, Fragment: e.Fragment}
		if e.Fragment {
			ds.Raw = FragmentScore
			ds.Rounded = FragmentScore
		} else {
			ds.Lines = EstimateLines(e.Text, charsPerLine)
			ds.Raw = t.Score(ds.Lines)
			ds.Rounded = RoundHalf(ds.Raw)
		}
		out.Total += ds.Rounded
		out.Dreams = append(out.Dreams, ds)
	}
	return out
}

// DreamLines estimates the length of every non-fragment dream of doc.
func DreamLines(doc *journal.Document, charsPerLine int) []int {
	var lines []int
	for _, e := range doc.AllDreams() {
		lines = append(lines, EstimateLines(e.Text, charsPerLine))
	}
	return lines
}
