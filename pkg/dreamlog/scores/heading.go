// Package scores reads and rewrites the day headings of a journal, which
// carry a dream score (D), a lucid dream score (LD) and their total.
package scores

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	dateRe          = regexp.MustCompile(`(?i)^Dreams?\s+(\d{2}/\d{2}/\d{4})`)
	uncertainDateRe = regexp.MustCompile(`(?i)^Dreams?\s+(\?{1,2}/\d{2}/\d{4})`)
	scoreRe         = regexp.MustCompile(`(?i)D:(\d+(?:[.,]\d+)?)\s+LD:(\d+(?:[.,]\d+)?)(?:\s+Score:(\d+(?:[.,]\d+)?))?`)
	dValueRe        = regexp.MustCompile(`D:\s*\d+(\.\d+)?`)
)

// Heading is a parsed day heading.
type Heading struct {
	Date      string
	Uncertain bool
	HasScore  bool
	D         float64
	LD        float64
	// Score is the written total, or D+LD when the heading has none.
	Score float64
}

// ParseHeading parses "Dreams dd/mm/yyyy - D:x LD:y [Score:z]". Uncertain
// days are written with "?" or "??" in place of the day. ok is false when
// the text carries no date.
func ParseHeading(text string) (h Heading, ok bool) {
	text = strings.TrimSpace(text)
	if m := dateRe.FindStringSubmatch(text); m != nil {
		h.Date = m[1]
	} else if m := uncertainDateRe.FindStringSubmatch(text); m != nil {
		h.Date = m[1]
		h.Uncertain = true
	} else {
		return Heading{}, false
	}

	m := scoreRe.FindStringSubmatch(text)
	if m == nil {
		return h, true
	}
	h.HasScore = true
	h.D = parseNumber(m[1])
	h.LD = parseNumber(m[2])
	if m[3] != "" {
		h.Score = parseNumber(m[3])
	} else {
		h.Score = h.D + h.LD
	}
	return h, true
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatNumber prints v without trailing zeros, e.g. 1, 1.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FillIn rewrites a scored heading to its canonical form with the total
// recomputed as D+LD. Other text is returned unchanged.
func FillIn(text string) (string, bool) {
	h, ok := ParseHeading(text)
	if !ok || !h.HasScore {
		return text, false
	}
	total := math.Round((h.D+h.LD)*1e6) / 1e6
	return fmt.Sprintf("Dreams %s - D:%s LD:%s Score:%s",
		h.Date, FormatNumber(h.D), FormatNumber(h.LD), FormatNumber(total)), true
}

// ReplaceD rewrites the first D: value of text with d to one decimal.
func ReplaceD(text string, d float64) string {
	loc := dValueRe.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + "D:" + strconv.FormatFloat(d, 'f', 1, 64) + text[loc[1]:]
}
