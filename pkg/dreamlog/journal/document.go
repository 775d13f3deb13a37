// Package journal models a dream journal as an ordered list of headings and
// body paragraphs, and carves it into the units the analyses consume.
package journal

import (
	"strings"
)

// Heading levels used by the journal layout.
const (
	Body = 0
	H1   = 1
	H2   = 2
)

// Titles of the sections written back by dreamlog itself.
const (
	FrequencyTitle  = "Frequency"
	TopWordsTitle   = "Top words"
	WordCloudTitle  = "Word cloud"
	StatisticsTitle = "Statistics"
	AverageTitle    = "average and median"
)

// Paragraph is a heading (Level 1..6) or a body paragraph (Level 0).
type Paragraph struct {
	Level int
	Text  string
}

// IsHeading reports whether p is a heading of any level.
func (p Paragraph) IsHeading() bool { return p.Level > Body }

// Document is an ordered journal.
type Document struct {
	Paragraphs []Paragraph
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	return &Document{Paragraphs: append([]Paragraph(nil), d.Paragraphs...)}
}

// Blocks returns the text of each maximal run of body paragraphs between
// headings. Runs with no text are dropped, as are generated "Top words"
// paragraphs.
func (d *Document) Blocks() [][]string {
	var blocks [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
	}
	for _, p := range d.Paragraphs {
		if p.IsHeading() {
			flush()
			continue
		}
		text := strings.TrimSpace(p.Text)
		if text == "" || strings.HasPrefix(text, TopWordsTitle) {
			continue
		}
		current = append(current, text)
	}
	flush()
	return blocks
}

// FlatText concatenates every body paragraph, skipping generated ones.
func (d *Document) FlatText() string {
	var b strings.Builder
	for _, p := range d.Paragraphs {
		if p.IsHeading() || strings.HasPrefix(p.Text, TopWordsTitle) {
			continue
		}
		b.WriteString(p.Text)
		b.WriteByte(' ')
	}
	return b.String()
}

// StripGenerated returns a copy of d without previously generated
// sections: a "Frequency" H1 up to the next H1 or "Word cloud" H2, and a
// "Word cloud" H2 up to the next H1 or H2.
func (d *Document) StripGenerated() *Document {
	const (
		keep = iota
		inFrequency
		inCloud
	)
	out := &Document{Paragraphs: make([]Paragraph, 0, len(d.Paragraphs))}
	state := keep
	for _, p := range d.Paragraphs {
		text := strings.TrimSpace(p.Text)
		switch {
		case p.Level == H1 && text == FrequencyTitle:
			state = inFrequency
		case p.Level == H2 && text == WordCloudTitle:
			state = inCloud
		case p.Level == H1:
			state = keep
		case p.Level == H2 && state == inCloud:
			state = keep
		}
		if state == keep {
			out.Paragraphs = append(out.Paragraphs, p)
		}
	}
	return out
}

// WithFrequencySection returns a stripped copy of d with a fresh
// "Frequency" section holding lines appended at the end.
func (d *Document) WithFrequencySection(lines []string) *Document {
	out := d.StripGenerated()
	out.Paragraphs = append(out.Paragraphs,
		Paragraph{Level: H1, Text: FrequencyTitle},
		Paragraph{Level: H2, Text: TopWordsTitle},
	)
	for _, l := range lines {
		out.Paragraphs = append(out.Paragraphs, Paragraph{Level: Body, Text: l})
	}
	return out
}

// SetText replaces the text of paragraph i.
func (d *Document) SetText(i int, text string) {
	if i < 0 || i >= len(d.Paragraphs) {
		return
	}
	d.Paragraphs[i].Text = text
}

// Headings returns the indices of the paragraphs at level.
func (d *Document) Headings(level int) []int {
	var out []int
	for i, p := range d.Paragraphs {
		if p.Level == level {
			out = append(out, i)
		}
	}
	return out
}
