// Package grouping merges singular/plural counterparts into ranked groups.
//
// Grouping runs in two passes: BuildCandidates computes every word's
// morphological counterparts up front, then MutualPairs keeps only the
// relations that hold in both directions.
package grouping

import (
	"fmt"
	"sort"

	"github.com/cognicore/dreamlog/pkg/dreamlog/analytics"
	"github.com/cognicore/dreamlog/pkg/dreamlog/display"
	"github.com/cognicore/dreamlog/pkg/dreamlog/morph"
)

// Candidates maps a word to the set of attested counterparts it proposes.
type Candidates map[string]map[string]struct{}

// Proposes reports whether a proposes b.
func (c Candidates) Proposes(a, b string) bool {
	_, ok := c[a][b]
	return ok
}

// BuildCandidates computes the counterparts of each word. known decides
// attestation for the morphology rules; results are further restricted to
// members of words.
func BuildCandidates(words []string, known morph.Known, engine *morph.Engine) Candidates {
	universe := make(map[string]struct{}, len(words))
	for _, w := range words {
		universe[w] = struct{}{}
	}
	out := make(Candidates, len(words))
	for _, w := range words {
		set := make(map[string]struct{})
		for _, b := range engine.BaseForms(w, known) {
			if b == w {
				continue
			}
			if _, ok := universe[b]; ok {
				set[b] = struct{}{}
			}
		}
		out[w] = set
	}
	return out
}

// Pair is a confirmed singular/plural couple.
type Pair struct {
	A, B string
	Key  string
}

// MutualPairs returns the symmetric relations in cands. Words are visited in
// sorted order and a word joins at most one pair; the first confirmed pair wins.
func MutualPairs(cands Candidates) []Pair {
	words := make([]string, 0, len(cands))
	for w := range cands {
		words = append(words, w)
	}
	sort.Strings(words)

	paired := make(map[string]struct{})
	var out []Pair
	for _, w := range words {
		if _, ok := paired[w]; ok {
			continue
		}
		for _, b := range sortedSet(cands[w]) {
			if _, ok := paired[b]; ok {
				continue
			}
			if !cands.Proposes(b, w) {
				continue
			}
			paired[w] = struct{}{}
			paired[b] = struct{}{}
			out = append(out, Pair{A: w, B: b, Key: display.OrderSingularPlural(w, b)})
			break
		}
	}
	return out
}

// Groups partitions a vocabulary into pairs and singletons.
type Groups struct {
	keyOf   map[string]string
	members map[string][]string
	forms   map[string][]string
	display map[string]string
	pair    map[string]bool
}

// Build groups every word of freq. Pair keys come from
// display.OrderSingularPlural; singletons are keyed by their sorted alias
// forms, falling back to the word itself if that key is already taken.
func Build(freq analytics.Frequencies, aliases analytics.Aliases, engine *morph.Engine) *Groups {
	words := freq.Words()
	return FromPairs(words, aliases, MutualPairs(BuildCandidates(words, freq, engine)))
}

// FromPairs assembles groups from already confirmed pairs.
func FromPairs(words []string, aliases analytics.Aliases, pairs []Pair) *Groups {
	g := &Groups{
		keyOf:   make(map[string]string, len(words)),
		members: make(map[string][]string),
		forms:   make(map[string][]string),
		display: make(map[string]string),
		pair:    make(map[string]bool),
	}
	for _, p := range pairs {
		g.assign(p.Key, p.A, true)
		g.assign(p.Key, p.B, true)
	}
	for _, w := range words {
		if _, ok := g.keyOf[w]; ok {
			continue
		}
		g.assign(g.singletonKey(w, aliases), w, false)
	}
	for key, members := range g.members {
		sort.Strings(members)
		formSet := make(map[string]struct{})
		for _, m := range members {
			for _, f := range aliases.Forms(m) {
				formSet[f] = struct{}{}
			}
		}
		forms := sortedSet(formSet)
		g.forms[key] = forms
		if g.pair[key] && len(forms) == 2 {
			g.display[key] = key
		} else {
			g.display[key] = display.JoinForms(forms)
		}
	}
	return g
}

func (g *Groups) assign(key, word string, pair bool) {
	g.keyOf[word] = key
	g.members[key] = append(g.members[key], word)
	if pair {
		g.pair[key] = true
	}
}

func (g *Groups) singletonKey(word string, aliases analytics.Aliases) string {
	key := display.JoinForms(aliases.Forms(word))
	if _, taken := g.members[key]; !taken {
		return key
	}
	if _, taken := g.members[word]; !taken {
		return word
	}
	for n := 2; ; n++ {
		key = fmt.Sprintf("%s#%d", word, n)
		if _, taken := g.members[key]; !taken {
			return key
		}
	}
}

// KeyOf returns the group key of word.
func (g *Groups) KeyOf(word string) (string, bool) {
	key, ok := g.keyOf[word]
	return key, ok
}

// Members returns the sorted normalized words of a group.
func (g *Groups) Members(key string) []string { return g.members[key] }

// Forms returns the sorted surface forms of a group.
func (g *Groups) Forms(key string) []string { return g.forms[key] }

// Display returns the label of a group.
func (g *Groups) Display(key string) string { return g.display[key] }

// IsPair reports whether key names a confirmed pair.
func (g *Groups) IsPair(key string) bool { return g.pair[key] }

// Keys returns every group key in ascending order.
func (g *Groups) Keys() []string {
	keys := make([]string, 0, len(g.members))
	for k := range g.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of groups.
func (g *Groups) Len() int { return len(g.members) }

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
