package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cognicore/dreamlog/pkg/dreamlog/scores"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stats"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// Title renders a section title.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Comma prints v without trailing zeros and with a decimal comma.
func Comma(v float64) string {
	return strings.Replace(scores.FormatNumber(v), ".", ",", 1)
}

func dreamCount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strings.Replace(strconv.FormatFloat(v, 'f', 1, 64), ".", ",", 1)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

// ScoreTable renders the dated rows of t.
func ScoreTable(t scores.Table) string {
	tbl := newTable("Date", "Week", "Month", "# Dreams", "D Score", "LD Score", "Total Score")
	for _, r := range t.Rows {
		tbl.Row(r.Date, r.Week, r.Month, dreamCount(r.Dreams), Comma(r.D), Comma(r.LD), Comma(r.Score))
	}
	return tbl.Render()
}

// UncertainTable renders the rows of t whose day is unknown.
func UncertainTable(t scores.Table) string {
	tbl := newTable("Date", "Month", "# Dreams", "D Score", "LD Score", "Total Score")
	for _, r := range t.Uncertain {
		tbl.Row(r.Date, r.Month, dreamCount(r.Dreams),
			scores.FormatNumber(r.D), scores.FormatNumber(r.LD), scores.FormatNumber(r.Score))
	}
	return tbl.Render()
}

// SummaryRows lists the statistics in display order, one decimal each.
func SummaryRows(s stats.Summary) [][]string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
	return [][]string{
		{"Average", f(s.Mean)},
		{"Median", f(s.Median)},
		{"Standard Deviation", f(s.SD)},
		{"Median Absolute Deviation (MAD)", f(s.MAD)},
		{"Scaled MAD", f(s.ScaledMAD)},
		{"Interquartile Range (IQR)", f(s.IQR)},
		{"Average + SD", f(s.MeanPlusSD)},
		{"Average - SD", f(s.MeanMinusSD)},
	}
}

// SummaryTable renders the statistics of the dream lengths.
func SummaryTable(s stats.Summary) string {
	tbl := newTable("Statistic", "Lines")
	tbl.Rows(SummaryRows(s)...)
	return tbl.Render()
}
