// Package morph proposes Italian singular/plural and gender counterparts of a
// word using suffix substitution rules and a small table of irregular forms.
//
// The rules are heuristics, not a dictionary: a candidate is only kept when
// it is attested in the corpus being analyzed.
package morph

import (
	"strings"
	"unicode/utf8"
)

// MinRuleLength is the length a word must exceed for the length-gated rules.
const MinRuleLength = 3

// Known reports whether a word is attested in the current corpus.
type Known interface {
	Has(word string) bool
}

// KnownSet is a Known backed by a set.
type KnownSet map[string]struct{}

// Has implements Known.
func (k KnownSet) Has(word string) bool {
	_, ok := k[word]
	return ok
}

// NewKnownSet builds a KnownSet from words.
func NewKnownSet(words ...string) KnownSet {
	k := make(KnownSet, len(words))
	for _, w := range words {
		k[w] = struct{}{}
	}
	return k
}

// DefaultIrregular pairs singular and plural forms that no suffix rule derives.
var DefaultIrregular = map[string]string{
	"uomo":     "uomini",
	"dio":      "dei",
	"tempio":   "templi",
	"bue":      "buoi",
	"moglie":   "mogli",
	"ciliegia": "ciliegie",
	"arma":     "armi",
	"ala":      "ali",
	"osso":     "ossa",
	"uovo":     "uova",
}

// Engine computes base-form candidates.
type Engine struct {
	irregular map[string]string
}

// NewEngine creates an engine holding DefaultIrregular.
func NewEngine() *Engine {
	e := &Engine{irregular: make(map[string]string, 2*len(DefaultIrregular))}
	for sing, plu := range DefaultIrregular {
		e.AddIrregular(sing, plu)
	}
	return e
}

// AddIrregular registers an irregular pair in both directions.
func (e *Engine) AddIrregular(singular, plural string) {
	singular = strings.ToLower(strings.TrimSpace(singular))
	plural = strings.ToLower(strings.TrimSpace(plural))
	if singular == "" || plural == "" || singular == plural {
		return
	}
	e.irregular[singular] = plural
	e.irregular[plural] = singular
}

// Irregular returns the irregular counterpart of word, if any.
func (e *Engine) Irregular(word string) (string, bool) {
	form, ok := e.irregular[word]
	return form, ok
}

// BaseForms returns the counterparts of word that are attested in known, in
// rule order, without duplicates and never including word itself.
//
// Irregular forms take precedence over every suffix rule; words ending with
// an accented vowel are invariant.
func (e *Engine) BaseForms(word string, known Known) []string {
	if form, ok := e.Irregular(word); ok {
		if form != word && known.Has(form) {
			return []string{form}
		}
		return nil
	}
	if isAccentTerminated(word) {
		return nil
	}

	var out []string
	seen := map[string]struct{}{word: {}}
	for _, cand := range Candidates(word) {
		if _, dup := seen[cand]; dup {
			continue
		}
		seen[cand] = struct{}{}
		if known.Has(cand) {
			out = append(out, cand)
		}
	}
	return out
}

// Candidates applies every suffix rule to word and returns the raw,
// unfiltered guesses in rule order. Rules are not exclusive.
func Candidates(word string) []string {
	n := utf8.RuneCountInString(word)
	long := n > MinRuleLength
	var forms []string
	add := func(trim int, suffix string) {
		forms = append(forms, word[:len(word)-trim]+suffix)
	}

	// masculine
	if long && strings.HasSuffix(word, "i") {
		add(1, "o")  // dadi -> dado
		add(1, "e")  // fiori -> fiore
		add(1, "io") // tizi -> tizio
	}
	if long && strings.HasSuffix(word, "o") {
		add(1, "i") // dado -> dadi
		add(1, "")  // tizio -> tizi
	}
	if long && strings.HasSuffix(word, "io") {
		add(2, "i") // tizio -> tizi
	}
	if long && strings.HasSuffix(word, "e") {
		add(1, "i") // fiore -> fiori
	}

	// velar plurals keep their sound with an h
	switch {
	case strings.HasSuffix(word, "co"):
		add(2, "chi") // parco -> parchi
	case strings.HasSuffix(word, "go"):
		add(2, "ghi") // fungo -> funghi
	}
	switch {
	case strings.HasSuffix(word, "chi"):
		add(3, "co")
	case strings.HasSuffix(word, "ghi"):
		add(3, "go")
	}

	// feminine
	if long && strings.HasSuffix(word, "e") {
		add(1, "a") // case -> casa
	}
	if long && strings.HasSuffix(word, "a") {
		add(1, "e") // casa -> case
	}
	switch {
	case strings.HasSuffix(word, "ca"):
		add(2, "che") // esca -> esche
	case strings.HasSuffix(word, "ga"):
		add(2, "ghe") // alga -> alghe
	case strings.HasSuffix(word, "che"):
		add(3, "ca")
	case strings.HasSuffix(word, "ghe"):
		add(3, "ga")
	}

	// palatal pairs, gated on the fourth-from-last letter
	if n > MinRuleLength+1 {
		gate := IsVowel([]rune(word)[n-4])
		switch {
		case strings.HasSuffix(word, "cia") && gate:
			add(3, "ce") // camicia -> camice
		case strings.HasSuffix(word, "ce") && gate:
			add(2, "cia") // arance -> arancia
		}
		switch {
		case strings.HasSuffix(word, "gia") && gate:
			add(3, "ge") // ciliegia -> ciliege
		case strings.HasSuffix(word, "ge") && gate:
			add(2, "gia")
		}
	}

	// -ista nouns share the masculine plural
	switch {
	case strings.HasSuffix(word, "ista"):
		add(4, "isti") // turista -> turisti
	case strings.HasSuffix(word, "isti"):
		add(4, "ista")
	}

	return forms
}

// IsVowel reports whether r is an unaccented Italian vowel.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isAccentTerminated(word string) bool {
	r, _ := utf8.DecodeLastRuneInString(word)
	switch r {
	case 'à', 'è', 'ì', 'ò', 'ù':
		return true
	}
	return false
}
