package ingest

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/dreamlog/pkg/dreamlog/stoplist"
)

// MinTokenLength is the shortest token kept, in characters.
const MinTokenLength = 2

var (
	// commentPattern matches notes written inside braces, which are not part of the dream.
	commentPattern = regexp.MustCompile(`\{.*?\}`)

	punctuationPattern = regexp.MustCompile(`[.,;:!?"“”«»()\[\]{}—–\-…'’]`)
)

// Tokenizer splits journal text into lowercase words, removing stop phrases,
// comments in braces, punctuation and stop words.
type Tokenizer struct {
	stops   *stoplist.Matcher
	phrases []*regexp.Regexp
}

// NewTokenizer creates a tokenizer backed by the given stop matcher.
// A nil matcher filters nothing but short tokens.
func NewTokenizer(stops *stoplist.Matcher) *Tokenizer {
	if stops == nil {
		stops = stoplist.NewMatcher(nil, nil, nil)
	}
	t := &Tokenizer{stops: stops}
	for _, phrase := range stops.Phrases() {
		t.phrases = append(t.phrases, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(phrase)+`\b`))
	}
	return t
}

// Tokenize returns the words of text in order, duplicates included.
func (t *Tokenizer) Tokenize(text string) []string {
	txt := strings.ToLower(norm.NFC.String(text))

	// phrases match the text as written, before punctuation is touched
	for _, re := range t.phrases {
		txt = re.ReplaceAllString(txt, " ")
	}

	txt = commentPattern.ReplaceAllString(txt, "")
	txt = punctuationPattern.ReplaceAllString(txt, " ")

	var tokens []string
	for _, word := range strings.Fields(txt) {
		if utf8.RuneCountInString(word) < MinTokenLength {
			continue
		}
		if t.stops.IsStop(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// IsStopword reports whether the underlying matcher rejects word.
func (t *Tokenizer) IsStopword(word string) bool {
	return t.stops.IsStop(word)
}

// Stoplist returns the underlying matcher.
func (t *Tokenizer) Stoplist() *stoplist.Matcher {
	return t.stops
}
