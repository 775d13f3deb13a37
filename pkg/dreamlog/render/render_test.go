package render

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/cognicore/dreamlog/pkg/dreamlog/rank"
	"github.com/cognicore/dreamlog/pkg/dreamlog/scores"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stats"
)

var sample = []rank.Entry{
	{Key: "sogno/sogni", Display: "sogno/sogni", Score: 3},
	{Key: "mare", Display: "mare", Score: 1},
}

func TestBars(t *testing.T) {
	lines := Bars(sample, 0, 0, 0)
	want := []string{
		"sogno/sogni" + strings.Repeat(" ", 14) + " " + strings.Repeat(BarRune, 30) + " (3)",
		"mare" + strings.Repeat(" ", 21) + " " + strings.Repeat(BarRune, 10) + " (1)",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("bars:\n%q\nwant\n%q", lines, want)
	}
}

func TestBarsZeroMax(t *testing.T) {
	lines := Bars([]rank.Entry{{Display: "mare", Score: 0}}, 0, 10, 6)
	if lines[0] != "mare    (0)" {
		t.Fatalf("zero bar = %q", lines[0])
	}
}

func TestList(t *testing.T) {
	lines := List([]rank.Entry{{Display: "sogno/sogni", Score: 4.2164}}, 2)
	if !reflect.DeepEqual(lines, []string{"1. sogno/sogni (4.22)"}) {
		t.Fatalf("list = %q", lines)
	}
	if got := Ranking(sample, ModeList, 0, 0, 0); got[1] != "2. mare (1)" {
		t.Fatalf("ranking list = %q", got)
	}
	if got := Ranking(sample, "", 0, 0, 0); !strings.Contains(got[0], BarRune) {
		t.Fatalf("ranking should default to bars: %q", got)
	}
}

func TestHistogramText(t *testing.T) {
	bins := []stats.Bin{{Label: "0", Count: 1}, {Label: "1"}, {Label: "50+", Count: 2}}
	got := HistogramText(bins, 0)
	want := []string{
		" 0  | " + strings.Repeat(BarRune, 15) + " (1)",
		" 1  | ",
		"50+ | " + strings.Repeat(BarRune, 30) + " (2)",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("histogram:\n%q\nwant\n%q", got, want)
	}
}

func TestDayReport(t *testing.T) {
	day := stats.DayScore{
		Dreams: []stats.DreamScore{
			{Title: "Il lago", Lines: 3, Raw: 1.5, Rounded: 1.5},
			{Title: "Fragment", Fragment: true, Raw: 0.5, Rounded: 0.5},
		},
		Total: 2,
	}
	got := DayReport(day, stats.Thresholds{Lower: 2, Upper: 4})
	want := []string{
		"Il lago: ~3 lines → Score: 1.50 (rounded 1.5)",
		"Fragment: → Score fixed: 0.50",
		"Total Score (rounded): 2.0",
		"Short if < 2.0",
		"Long if > 4.0",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("report:\n%q", got)
	}
}

func TestScoreTables(t *testing.T) {
	tbl := scores.Table{
		Rows:      []scores.Row{{Date: "29/02/2024", Week: "2024-W09", Month: "February", Dreams: 1.5, D: 1.5, LD: 1, Score: 2.5}},
		Uncertain: []scores.Row{{Date: "??/03/2024", Month: "March", Dreams: 2, D: 1, Score: 1}},
	}
	out := ScoreTable(tbl)
	for _, s := range []string{"Date", "29/02/2024", "2024-W09", "February", "1,5", "2,5"} {
		if !strings.Contains(out, s) {
			t.Errorf("score table missing %q:\n%s", s, out)
		}
	}
	out = UncertainTable(tbl)
	for _, s := range []string{"??/03/2024", "March"} {
		if !strings.Contains(out, s) {
			t.Errorf("uncertain table missing %q:\n%s", s, out)
		}
	}
	if dreamCount(2) != "2" || dreamCount(0.5) != "0,5" {
		t.Fatalf("dream counts: %q %q", dreamCount(2), dreamCount(0.5))
	}
}

func TestSummaryTable(t *testing.T) {
	s := stats.Summary{Mean: 2.5, Median: 2, SD: 1.118}
	rows := SummaryRows(s)
	if len(rows) != 8 || rows[0][1] != "2.5" || rows[2][1] != "1.1" {
		t.Fatalf("rows = %v", rows)
	}
	if out := SummaryTable(s); !strings.Contains(out, "Scaled MAD") {
		t.Fatalf("summary table:\n%s", out)
	}
}

func TestWordCloud(t *testing.T) {
	var entries []rank.Entry
	entries = append(entries, rank.Entry{Key: "sogno/sogni", Display: "sogno/sogni", Score: 6})
	for _, w := range []string{"mare", "a&b", "luna", "sole", "vento"} {
		entries = append(entries, rank.Entry{Key: w, Display: w, Score: 3})
	}
	cloud := WordCloud(entries, nil)
	if len(cloud.Words) != 6 {
		t.Fatalf("words = %d", len(cloud.Words))
	}
	first := cloud.Words[0]
	if first.Text != "sogno/i" || first.Size != MaxFontSize || first.Color != "#4285F4" {
		t.Fatalf("first word = %+v", first)
	}
	if cloud.Words[5].Color != DefaultColors[0] || cloud.Words[1].Color != DefaultColors[1] {
		t.Fatalf("colors do not cycle: %+v", cloud.Words)
	}
	if cloud.Words[1].Size != (MinFontSize+MaxFontSize)/2 {
		t.Fatalf("half score size = %v", cloud.Words[1].Size)
	}

	var buf bytes.Buffer
	if err := cloud.SVG(&buf); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	svg := buf.String()
	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, "a&amp;b") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("svg = %s", svg)
	}
}

func TestWordCloudEmpty(t *testing.T) {
	cloud := WordCloud(nil, []string{"#000000"})
	if len(cloud.Words) != 0 || cloud.Width != CloudWidth || cloud.Height != CloudHeight {
		t.Fatalf("empty cloud = %+v", cloud)
	}
}
