// Package display formats group keys and labels for output.
package display

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTitleLength is the longest title ShortTitle leaves untouched.
	MaxTitleLength = 40
	// Ellipsis terminates shortened titles.
	Ellipsis = "…"
	// Separator joins the forms of a group.
	Separator = "/"
)

// OrderSingularPlural joins two forms, singular first when the -o/-i endings
// make it detectable and alphabetically otherwise. The result does not depend
// on argument order.
func OrderSingularPlural(w1, w2 string) string {
	endsO1, endsI1 := strings.HasSuffix(w1, "o"), strings.HasSuffix(w1, "i")
	endsO2, endsI2 := strings.HasSuffix(w2, "o"), strings.HasSuffix(w2, "i")
	switch {
	case endsO1 && endsI2:
		return w1 + Separator + w2
	case endsI1 && endsO2:
		return w2 + Separator + w1
	}
	if w2 < w1 {
		w1, w2 = w2, w1
	}
	return w1 + Separator + w2
}

// JoinForms sorts forms and joins them with the separator.
func JoinForms(forms []string) string {
	cp := append([]string(nil), forms...)
	sort.Strings(cp)
	return strings.Join(cp, Separator)
}

// LongestCommonPrefix returns the shared rune prefix of a and b.
func LongestCommonPrefix(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) {
		ra, sa := utf8.DecodeRuneInString(a[i:])
		rb, sb := utf8.DecodeRuneInString(b[i:])
		if ra != rb || sa != sb {
			break
		}
		i += sa
	}
	return a[:i]
}

// ShortenSingPlu shortens a two-form display to "singular/tail", e.g.
// "sogno/sogni" becomes "sogno/i". Displays that are not exactly two forms,
// share fewer than two leading characters, or have nothing left to shorten
// are returned unchanged.
func ShortenSingPlu(display string) string {
	parts := strings.Split(display, Separator)
	if len(parts) != 2 {
		return display
	}
	sing, plu := parts[0], parts[1]
	prefix := LongestCommonPrefix(sing, plu)
	if utf8.RuneCountInString(prefix) < 2 {
		return display
	}
	tail := plu[len(prefix):]
	if tail == "" {
		return display
	}
	return sing + Separator + tail
}

// PadTitle right-pads s with spaces to width runes.
func PadTitle(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// ShortTitle truncates titles longer than max runes (MaxTitleLength when
// max is not positive) to max-3 runes followed by an ellipsis.
func ShortTitle(s string, max int) string {
	if max <= 0 {
		max = MaxTitleLength
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	keep := max - 3
	if keep < 1 {
		keep = 1
	}
	return string([]rune(s)[:keep]) + Ellipsis
}
