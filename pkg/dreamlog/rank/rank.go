// Package rank scores word groups with interchangeable strategies.
package rank

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cognicore/dreamlog/pkg/dreamlog/analytics"
	"github.com/cognicore/dreamlog/pkg/dreamlog/grouping"
	"github.com/cognicore/dreamlog/pkg/dreamlog/internalerr"
	"github.com/cognicore/dreamlog/pkg/dreamlog/morph"
)

// DefaultLimit is the number of entries kept by Top.
const DefaultLimit = 30

// Strategy names accepted by ByName.
const (
	NameRaw      = "raw"
	NameDistinct = "distinct"
	NameTFIDF    = "tfidf"
)

// Entry is one ranked group.
type Entry struct {
	Key     string
	Display string
	Score   float64
}

// Strategy aggregates a corpus into scored groups.
type Strategy interface {
	Name() string
	// RankAll returns every group, highest score first.
	RankAll(corpus analytics.Corpus) []Entry
}

// Top ranks corpus with s and keeps the first limit entries
// (DefaultLimit when limit is not positive).
func Top(s Strategy, corpus analytics.Corpus, limit int) []Entry {
	return Truncate(s.RankAll(corpus), limit)
}

// Truncate keeps the first limit entries (DefaultLimit when limit is not positive).
func Truncate(entries []Entry, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// ByName returns the strategy registered under name.
func ByName(name string, engine *morph.Engine) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameRaw, "":
		return RawTotal{Morph: engine}, nil
	case NameDistinct:
		return DistinctDocFreq{Morph: engine}, nil
	case NameTFIDF:
		return TFIDF{Morph: engine}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q: %w", name, internalerr.ErrInvalidInput)
}

// Decimals reports how many decimals the scores of s carry.
func Decimals(s Strategy) int {
	if _, ok := s.(TFIDF); ok {
		return 2
	}
	return 0
}

// RawTotal scores a group by the total occurrences of its members.
type RawTotal struct {
	Morph *morph.Engine
}

func (RawTotal) Name() string { return NameRaw }

func (r RawTotal) RankAll(corpus analytics.Corpus) []Entry {
	groups := grouping.Build(corpus.Freq, corpus.Aliases, engineOrDefault(r.Morph))
	entries := make([]Entry, 0, groups.Len())
	for _, key := range groups.Keys() {
		var total int
		for _, m := range groups.Members(key) {
			total += corpus.Freq[m]
		}
		entries = append(entries, Entry{Key: key, Display: groups.Display(key), Score: float64(total)})
	}
	sortEntries(entries)
	return entries
}

// DistinctDocFreq scores a group by the number of blocks that mention it.
type DistinctDocFreq struct {
	Morph *morph.Engine
}

func (DistinctDocFreq) Name() string { return NameDistinct }

func (d DistinctDocFreq) RankAll(corpus analytics.Corpus) []Entry {
	groups := grouping.Build(corpus.Freq, corpus.Aliases, engineOrDefault(d.Morph))
	counts := make(map[string]int, groups.Len())
	for _, block := range corpus.Blocks {
		seen := make(map[string]struct{})
		for _, w := range block {
			key, ok := groups.KeyOf(w)
			if !ok {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			counts[key]++
		}
	}
	entries := make([]Entry, 0, len(counts))
	for _, key := range groups.Keys() {
		if counts[key] == 0 {
			continue
		}
		entries = append(entries, Entry{Key: key, Display: groups.Display(key), Score: float64(counts[key])})
	}
	sortEntries(entries)
	return entries
}

// TFIDF scores each term by its peak tf×idf over the blocks. Tokens are
// folded onto their first attested counterpart before counting. Confirmed
// pairs are merged block by block into a single term and score their total
// merged tf × idf.
type TFIDF struct {
	Morph *morph.Engine
}

func (TFIDF) Name() string { return NameTFIDF }

func (t TFIDF) RankAll(corpus analytics.Corpus) []Entry {
	engine := engineOrDefault(t.Morph)
	n := len(corpus.Blocks)
	if n == 0 {
		return []Entry{}
	}

	folded := make(map[string]string)
	tf := make(map[string][]int)
	for i, block := range corpus.Blocks {
		for _, w := range block {
			term, ok := folded[w]
			if !ok {
				term = w
				if bases := engine.BaseForms(w, corpus.Freq); len(bases) > 0 {
					term = bases[0]
				}
				folded[w] = term
			}
			counts := tf[term]
			if counts == nil {
				counts = make([]int, n)
				tf[term] = counts
			}
			counts[i]++
		}
	}

	terms := make([]string, 0, len(tf))
	for term := range tf {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	pairs := grouping.MutualPairs(grouping.BuildCandidates(terms, corpus.Freq, engine))
	groups := grouping.FromPairs(terms, corpus.Aliases, pairs)

	entries := make([]Entry, 0, groups.Len())
	merged := make([]int, n)
	for _, key := range groups.Keys() {
		for i := range merged {
			merged[i] = 0
		}
		for _, m := range groups.Members(key) {
			for i, c := range tf[m] {
				merged[i] += c
			}
		}
		df := 0
		for _, c := range merged {
			if c > 0 {
				df++
			}
		}
		idf := IDF(n, df)
		best := 0.0
		if groups.IsPair(key) {
			// a pair scores its whole merged frequency
			total := 0
			for _, c := range merged {
				total += c
			}
			best = float64(total) * idf
		} else {
			for _, c := range merged {
				if v := float64(c) * idf; v > best {
					best = v
				}
			}
		}
		entries = append(entries, Entry{Key: key, Display: groups.Display(key), Score: Round2(best)})
	}
	sortEntries(entries)
	return entries
}

// IDF is the smoothed inverse document frequency ln((1+total)/(1+df)) + 1.
func IDF(total, df int) float64 {
	return math.Log(float64(1+total)/float64(1+df)) + 1
}

// Round2 rounds to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score == entries[j].Score {
			return entries[i].Key < entries[j].Key
		}
		return entries[i].Score > entries[j].Score
	})
}

func engineOrDefault(e *morph.Engine) *morph.Engine {
	if e == nil {
		return morph.NewEngine()
	}
	return e
}
