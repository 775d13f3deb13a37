package stoplist

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Matcher decides whether a token carries no meaning for word ranking.
//
// Three kinds of rules are held:
//   - exact words ("il", "sono", "visto")
//   - wildcard patterns "prefix*" matching prefix plus exactly one more character
//     ("quest*" matches "questo" and "questa" but not "questione")
//   - phrases removed from raw text before tokenization ("rendere conto")
type Matcher struct {
	exact    map[string]struct{}
	prefixes []string
	phrases  []string
}

// NewMatcher creates a matcher from exact words, wildcard patterns and phrases.
// Patterns without a trailing '*' are ignored.
func NewMatcher(exact, wildcards, phrases []string) *Matcher {
	m := &Matcher{exact: make(map[string]struct{}, len(exact))}
	for _, w := range exact {
		m.Add(w)
	}
	for _, p := range wildcards {
		m.AddWildcard(p)
	}
	for _, p := range phrases {
		m.AddPhrase(p)
	}
	return m
}

// Default returns a matcher loaded with the built-in Italian lists.
func Default() *Matcher {
	return NewMatcher(DefaultExact, DefaultWildcards, DefaultPhrases)
}

// IsStop checks if a token is a stop word
func (m *Matcher) IsStop(token string) bool {
	if _, ok := m.exact[token]; ok {
		return true
	}
	n := utf8.RuneCountInString(token)
	for _, base := range m.prefixes {
		if n == utf8.RuneCountInString(base)+1 && strings.HasPrefix(token, base) {
			return true
		}
	}
	return false
}

// Add adds an exact stop word
func (m *Matcher) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	m.exact[word] = struct{}{}
}

// AddWildcard adds a "prefix*" pattern.
func (m *Matcher) AddWildcard(pattern string) {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if !strings.HasSuffix(pattern, "*") {
		return
	}
	base := strings.TrimSuffix(pattern, "*")
	for _, p := range m.prefixes {
		if p == base {
			return
		}
	}
	m.prefixes = append(m.prefixes, base)
}

// AddPhrase adds a multi-word phrase to strip from raw text.
func (m *Matcher) AddPhrase(phrase string) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return
	}
	m.phrases = append(m.phrases, phrase)
}

// Remove removes an exact stop word
func (m *Matcher) Remove(word string) {
	delete(m.exact, strings.ToLower(word))
}

// Phrases returns the stop phrases in insertion order.
func (m *Matcher) Phrases() []string {
	out := make([]string, len(m.phrases))
	copy(out, m.phrases)
	return out
}

// Wildcards returns the wildcard patterns, each with its trailing '*'.
func (m *Matcher) Wildcards() []string {
	out := make([]string, 0, len(m.prefixes))
	for _, p := range m.prefixes {
		out = append(out, p+"*")
	}
	return out
}

// All returns all exact stop words, sorted.
func (m *Matcher) All() []string {
	result := make([]string, 0, len(m.exact))
	for s := range m.exact {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}
