// Package render turns rankings, statistics and score tables into text and
// images.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cognicore/dreamlog/pkg/dreamlog/display"
	"github.com/cognicore/dreamlog/pkg/dreamlog/rank"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stats"
)

// Defaults for bar charts.
const (
	DefaultBarWidth   = 30
	DefaultLabelWidth = 25
	BarRune           = "█"
)

// Display modes.
const (
	ModeBar  = "bar"
	ModeList = "list"
)

// FormatScore prints v with the given number of decimals.
func FormatScore(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	return strings.Repeat(BarRune, int(math.Round(value/max*float64(width))))
}

// Bars renders one "label  ████ (score)" line per entry. Bar lengths are
// relative to the highest score.
func Bars(entries []rank.Entry, decimals, width, labelWidth int) []string {
	if width <= 0 {
		width = DefaultBarWidth
	}
	if labelWidth <= 0 {
		labelWidth = DefaultLabelWidth
	}
	max := 0.0
	for _, e := range entries {
		if e.Score > max {
			max = e.Score
		}
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s %s (%s)",
			display.PadTitle(e.Display, labelWidth), bar(e.Score, max, width), FormatScore(e.Score, decimals)))
	}
	return lines
}

// List renders one "n. label (score)" line per entry.
func List(entries []rank.Entry, decimals int) []string {
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, e.Display, FormatScore(e.Score, decimals)))
	}
	return lines
}

// Ranking renders entries in mode, ModeBar unless ModeList is asked for.
func Ranking(entries []rank.Entry, mode string, decimals, width, labelWidth int) []string {
	if mode == ModeList {
		return List(entries, decimals)
	}
	return Bars(entries, decimals, width, labelWidth)
}

// HistogramText renders bins as "label | bar (count)" lines; empty bins
// have neither bar nor count.
func HistogramText(bins []stats.Bin, width int) []string {
	if width <= 0 {
		width = DefaultBarWidth
	}
	max := 0
	for _, b := range bins {
		if b.Count > max {
			max = b.Count
		}
	}
	lines := make([]string, 0, len(bins))
	for _, b := range bins {
		label := b.Label
		if len(label) < 2 {
			label = " " + label
		}
		label = display.PadTitle(label, 3)
		count := ""
		if b.Count > 0 {
			count = fmt.Sprintf(" (%d)", b.Count)
		}
		lines = append(lines, fmt.Sprintf("%s | %s%s", label, bar(float64(b.Count), float64(max), width), count))
	}
	return lines
}

// DayReport describes the scoring of one day the way it is shown to the
// journal author.
func DayReport(day stats.DayScore, t stats.Thresholds) []string {
	var lines []string
	for _, d := range day.Dreams {
		title := display.ShortTitle(d.Title, 0)
		if d.Fragment {
			lines = append(lines, fmt.Sprintf("%s: → Score fixed: %.2f", title, d.Raw))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: ~%d lines → Score: %.2f (rounded %.1f)", title, d.Lines, d.Raw, d.Rounded))
	}
	lines = append(lines,
		fmt.Sprintf("Total Score (rounded): %.1f", day.Total),
		fmt.Sprintf("Short if < %.1f", t.Lower),
		fmt.Sprintf("Long if > %.1f", t.Upper),
	)
	return lines
}
