package scores

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cognicore/dreamlog/pkg/dreamlog/internalerr"
	"github.com/cognicore/dreamlog/pkg/dreamlog/journal"
)

// DateLayout is the day format used in headings.
const DateLayout = "02/01/2006"

// LowScore is the highest total treated as an empty day when skipping.
const LowScore = 0.25

// Row is one day of the score table.
type Row struct {
	Date   string
	Week   string // ISO week, e.g. 2024-W09
	Month  string
	Dreams float64 // fragments count one half
	D      float64
	LD     float64
	Score  float64
}

// Table holds the dated rows and, separately, the days whose date is not
// known exactly.
type Table struct {
	Rows      []Row
	Uncertain []Row
}

// BuildTable collects the scored day headings of doc. Rows are sorted by
// date. Unless skipLow is set, days missing between the first and last date
// are filled with zero rows; with skipLow, days scoring LowScore or less are
// left out.
func BuildTable(doc *journal.Document, skipLow bool) (Table, error) {
	counts := DreamCounts(doc)

	type dated struct {
		at  time.Time
		row Row
	}
	var certain []dated
	var table Table
	for _, i := range doc.Headings(journal.H1) {
		h, ok := ParseHeading(doc.Paragraphs[i].Text)
		if !ok || !h.HasScore {
			continue
		}
		row := Row{Date: h.Date, Dreams: counts[h.Date], D: h.D, LD: h.LD, Score: h.Score}
		if h.Uncertain {
			row.Month = uncertainMonth(h.Date)
			table.Uncertain = append(table.Uncertain, row)
			continue
		}
		at, err := time.Parse(DateLayout, h.Date)
		if err != nil {
			continue
		}
		if skipLow && h.Score <= LowScore {
			continue
		}
		fillCalendar(&row, at)
		certain = append(certain, dated{at: at, row: row})
	}
	if len(certain) == 0 && len(table.Uncertain) == 0 {
		return Table{}, fmt.Errorf("build score table: %w", internalerr.ErrNoScores)
	}

	sort.SliceStable(certain, func(i, j int) bool { return certain[i].at.Before(certain[j].at) })
	if skipLow || len(certain) == 0 {
		for _, c := range certain {
			table.Rows = append(table.Rows, c.row)
		}
		return table, nil
	}

	byDate := make(map[string]Row, len(certain))
	for _, c := range certain {
		byDate[c.row.Date] = c.row
	}
	last := certain[len(certain)-1].at
	for day := certain[0].at; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format(DateLayout)
		row, ok := byDate[key]
		if !ok {
			row = Row{Date: key, Dreams: counts[key]}
			fillCalendar(&row, day)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// DreamCounts counts the dreams recorded under each dated heading: one per
// dream, one half per fragment.
func DreamCounts(doc *journal.Document) map[string]float64 {
	counts := make(map[string]float64)
	for _, day := range doc.Days() {
		h, ok := ParseHeading(day.Title)
		if !ok {
			continue
		}
		if _, seen := counts[h.Date]; !seen {
			counts[h.Date] = 0
		}
		for _, e := range day.Entries {
			if e.Fragment {
				counts[h.Date] += 0.5
			} else {
				counts[h.Date]++
			}
		}
	}
	return counts
}

func fillCalendar(row *Row, at time.Time) {
	year, week := at.ISOWeek()
	row.Week = fmt.Sprintf("%d-W%02d", year, week)
	row.Month = at.Month().String()
}

func uncertainMonth(date string) string {
	parts := strings.Split(date, "/")
	if len(parts) < 3 {
		return "?"
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return "?"
	}
	return time.Month(m).String()
}

// FillInAll rewrites every scored H1 heading of doc with FillIn and returns
// how many headings changed.
func FillInAll(doc *journal.Document) int {
	changed := 0
	for _, i := range doc.Headings(journal.H1) {
		text := doc.Paragraphs[i].Text
		if out, ok := FillIn(text); ok && out != text {
			doc.SetText(i, out)
			changed++
		}
	}
	return changed
}
