package lexicon

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon maps equivalent words onto one canonical form before counting.
//
// Example: "retro" and "dietro" describe the same place in a dream, so both
// are counted as "dietro". The mapping is lossy on purpose; callers that
// need the original spelling keep it themselves (see analytics.Aliases).
type Lexicon struct {
	// canonical -> all variants (including canonical itself)
	synonyms map[string][]string

	// variant -> canonical
	reverseIndex map[string]string
}

// DefaultEquivalences is the built-in Italian synonym table, variant -> canonical.
var DefaultEquivalences = map[string]string{
	"avanti": "davanti",
	"retro":  "dietro",
	"sù":     "sopra",
	"giù":    "sotto",

	// temporal
	"precedentemente": "prima",
	"poi":             "dopo",
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		synonyms:     make(map[string][]string),
		reverseIndex: make(map[string]string),
	}
}

// Default returns a lexicon holding DefaultEquivalences.
func Default() *Lexicon {
	lex := New()
	groups := make(map[string][]string)
	for variant, canonical := range DefaultEquivalences {
		groups[canonical] = append(groups[canonical], variant)
	}
	canonicals := make([]string, 0, len(groups))
	for c := range groups {
		canonicals = append(canonicals, c)
	}
	sort.Strings(canonicals)
	for _, c := range canonicals {
		variants := groups[c]
		sort.Strings(variants)
		lex.AddSynonymGroup(c, variants)
	}
	return lex
}

// LoadFromYAML loads equivalence groups from a YAML file.
//
// Expected format:
//
//	synonyms:
//	  - canonical: dietro
//	    variants: [retro]
//	  - canonical: dopo
//	    variants: [poi]
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Synonyms []struct {
			Canonical string   `yaml:"canonical"`
			Variants  []string `yaml:"variants"`
		} `yaml:"synonyms"`
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	lex := New()
	for _, entry := range config.Synonyms {
		lex.AddSynonymGroup(entry.Canonical, entry.Variants)
	}

	return lex, nil
}

// AddSynonymGroup adds a group with a canonical form and its variants.
// The canonical form is always the first entry of the group.
// If the group already exists, old reverse index entries are cleaned up first.
func (l *Lexicon) AddSynonymGroup(canonical string, variants []string) {
	canonical = strings.ToLower(canonical)

	if oldVariants, exists := l.synonyms[canonical]; exists {
		for _, oldV := range oldVariants {
			delete(l.reverseIndex, oldV)
		}
	}

	normalized := make([]string, 0, len(variants)+1)
	seen := make(map[string]bool)

	normalized = append(normalized, canonical)
	seen[canonical] = true

	for _, v := range variants {
		v = strings.ToLower(v)
		if !seen[v] {
			normalized = append(normalized, v)
			seen[v] = true
		}
	}

	l.synonyms[canonical] = normalized

	for _, v := range normalized {
		l.reverseIndex[v] = canonical
	}
}

// Normalize returns the canonical form of a word, or the word itself when
// it belongs to no group.
//
// Examples:
//   - Normalize("retro") -> "dietro"
//   - Normalize("cane") -> "cane"
func (l *Lexicon) Normalize(word string) string {
	if canonical, ok := l.reverseIndex[word]; ok {
		return canonical
	}
	return word
}

// Variants returns all known variants of a word (canonical first).
// Unknown words yield a slice holding only the word.
func (l *Lexicon) Variants(word string) []string {
	word = strings.ToLower(word)

	if variants, ok := l.synonyms[word]; ok {
		return variants
	}
	if canonical, ok := l.reverseIndex[word]; ok {
		if variants, ok := l.synonyms[canonical]; ok {
			return variants
		}
	}
	return []string{word}
}

// Stats returns statistics about the lexicon contents.
func (l *Lexicon) Stats() LexiconStats {
	totalVariants := 0
	for _, variants := range l.synonyms {
		totalVariants += len(variants)
	}
	return LexiconStats{
		SynonymGroups: len(l.synonyms),
		TotalVariants: totalVariants,
	}
}

// LexiconStats holds statistics about lexicon contents.
type LexiconStats struct {
	SynonymGroups int // Number of canonical forms
	TotalVariants int // Total number of variants across all groups
}
