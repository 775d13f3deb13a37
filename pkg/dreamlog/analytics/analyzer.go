package analytics

import (
	"math"
	"sort"

	"github.com/cognicore/dreamlog/pkg/dreamlog/stoplist"
)

// Frequencies maps a normalized word to its total occurrence count.
type Frequencies map[string]int

// Has reports whether word occurs at least once. It satisfies morph.Known.
func (f Frequencies) Has(word string) bool {
	return f[word] > 0
}

// Words returns the distinct words in ascending order.
func (f Frequencies) Words() []string {
	out := make([]string, 0, len(f))
	for w := range f {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Total returns the number of counted tokens.
func (f Frequencies) Total() int {
	var n int
	for _, c := range f {
		n += c
	}
	return n
}

// Aliases maps a normalized word to the surface forms that produced it.
type Aliases map[string]map[string]struct{}

// Add records surface as a spelling of normalized.
func (a Aliases) Add(normalized, surface string) {
	set, ok := a[normalized]
	if !ok {
		set = make(map[string]struct{})
		a[normalized] = set
	}
	set[surface] = struct{}{}
}

// Forms returns the sorted surface forms of normalized, or the word itself
// when no alias was recorded.
func (a Aliases) Forms(normalized string) []string {
	set := a[normalized]
	if len(set) == 0 {
		return []string{normalized}
	}
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Corpus is the counted input of one ranking run.
type Corpus struct {
	Freq    Frequencies
	Aliases Aliases
	// Blocks holds the normalized tokens of every non-empty block in order.
	Blocks [][]string
}

// TotalBlocks returns the number of blocks.
func (c Corpus) TotalBlocks() int { return len(c.Blocks) }

// DocFreq returns, for each normalized word, the number of blocks containing it.
func (c Corpus) DocFreq() map[string]int {
	df := make(map[string]int)
	for _, block := range c.Blocks {
		seen := make(map[string]struct{}, len(block))
		for _, w := range block {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			df[w]++
		}
	}
	return df
}

// StopwordStats reports, per word in sorted order, how widely it is spread
// over the blocks. It feeds stoplist.Suggest.
func (c Corpus) StopwordStats() []stoplist.Stats {
	total := c.TotalBlocks()
	if total == 0 {
		return nil
	}
	df := c.DocFreq()
	words := c.Freq.Words()
	out := make([]stoplist.Stats, 0, len(words))
	for _, w := range words {
		n := df[w]
		if n == 0 {
			continue
		}
		out = append(out, stoplist.Stats{
			Token:     w,
			Count:     c.Freq[w],
			DF:        n,
			DFPercent: 100 * float64(n) / float64(total),
			IDF:       math.Log(float64(total) / float64(n)),
		})
	}
	return out
}

// Analyzer accumulates frequencies, aliases and blocks.
type Analyzer struct {
	freq    Frequencies
	aliases Aliases
	blocks  [][]string
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		freq:    make(Frequencies),
		aliases: make(Aliases),
	}
}

// Process consumes one block. surface and normalized are parallel slices as
// produced by ingest.Pipeline; a block without tokens is not recorded.
func (a *Analyzer) Process(surface, normalized []string) {
	if len(normalized) == 0 {
		return
	}
	block := make([]string, 0, len(normalized))
	for i, norm := range normalized {
		if norm == "" {
			continue
		}
		a.freq[norm]++
		if i < len(surface) {
			a.aliases.Add(norm, surface[i])
		} else {
			a.aliases.Add(norm, norm)
		}
		block = append(block, norm)
	}
	if len(block) > 0 {
		a.blocks = append(a.blocks, block)
	}
}

// Snapshot returns a copy of the accumulated corpus.
func (a *Analyzer) Snapshot() Corpus {
	freq := make(Frequencies, len(a.freq))
	for w, c := range a.freq {
		freq[w] = c
	}
	aliases := make(Aliases, len(a.aliases))
	for w, forms := range a.aliases {
		cp := make(map[string]struct{}, len(forms))
		for f := range forms {
			cp[f] = struct{}{}
		}
		aliases[w] = cp
	}
	blocks := make([][]string, len(a.blocks))
	for i, b := range a.blocks {
		blocks[i] = append([]string(nil), b...)
	}
	return Corpus{Freq: freq, Aliases: aliases, Blocks: blocks}
}
