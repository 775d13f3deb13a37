package journal

import "strings"

// Entry is one dream titled by an H2 heading.
type Entry struct {
	Title string
	// Text is the dream body, one space after each paragraph.
	Text     string
	Fragment bool
}

// Day is an H1 heading with the dreams recorded under it.
type Day struct {
	// Index is the position of the heading in Document.Paragraphs.
	Index   int
	Title   string
	Entries []Entry
}

// Dreams returns the entries that are not fragments.
func (d Day) Dreams() []Entry {
	var out []Entry
	for _, e := range d.Entries {
		if !e.Fragment {
			out = append(out, e)
		}
	}
	return out
}

// IgnoredTitle reports whether an H2 title names generated or statistics
// content rather than a dream.
func IgnoredTitle(title string) bool {
	lower := strings.ToLower(strings.TrimSpace(title))
	return lower == "" ||
		strings.HasPrefix(lower, "top words") ||
		strings.HasPrefix(lower, "word cloud") ||
		lower == AverageTitle
}

// IsFragment reports whether an H2 title marks a dream fragment.
func IsFragment(title string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(title)), "fragment")
}

// Days groups the document by H1 heading. H1 headings mentioning
// statistics are skipped, as are generated H2 sections; everything below an
// H2 other than another H1 or H2 belongs to that dream.
func (d *Document) Days() []Day {
	var days []Day
	var day *Day
	var entry *Entry
	var text strings.Builder

	closeEntry := func() {
		if entry != nil && day != nil {
			entry.Text = text.String()
			day.Entries = append(day.Entries, *entry)
		}
		entry = nil
		text.Reset()
	}
	closeDay := func() {
		closeEntry()
		if day != nil {
			days = append(days, *day)
		}
		day = nil
	}

	for i, p := range d.Paragraphs {
		title := strings.TrimSpace(p.Text)
		switch p.Level {
		case H1:
			closeDay()
			if strings.Contains(strings.ToLower(title), "statistics") {
				continue
			}
			day = &Day{Index: i, Title: title}
		case H2:
			closeEntry()
			if day == nil || IgnoredTitle(title) {
				continue
			}
			if IsFragment(title) {
				day.Entries = append(day.Entries, Entry{Title: title, Fragment: true})
				continue
			}
			entry = &Entry{Title: title}
		default:
			if entry != nil {
				text.WriteString(title)
				text.WriteByte(' ')
			}
		}
	}
	closeDay()
	return days
}

// AllDreams returns the non-fragment entries of every day in order.
func (d *Document) AllDreams() []Entry {
	var out []Entry
	for _, day := range d.Days() {
		out = append(out, day.Dreams()...)
	}
	return out
}
