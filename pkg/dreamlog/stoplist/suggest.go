package stoplist

import "sort"

// Stats holds the block statistics of one token.
type Stats struct {
	Token     string
	Count     int
	DF        int
	DFPercent float64
	IDF       float64
}

// Candidate is a token proposed as a new stop word.
type Candidate struct {
	Token     string
	DF        int
	DFPercent float64
	Score     float64 // confidence in [0,1]
}

// Thresholds defines criteria for stop word suggestions.
type Thresholds struct {
	DFPercent float64 // e.g. 30: appears in 30% of the dreams
	MinDF     int     // ignore tokens seen in fewer blocks
}

// DefaultThresholds returns the thresholds used when none are given.
func DefaultThresholds() Thresholds {
	return Thresholds{DFPercent: 30, MinDF: 3}
}

// SuggestCandidates proposes tokens of stats that m does not stop yet.
func (m *Matcher) SuggestCandidates(stats []Stats, t Thresholds) []Candidate {
	return Suggest(stats, m.IsStop, t)
}

// Suggest returns the tokens spread over more than t.DFPercent of the
// blocks, most widespread first. Tokens isStop accepts are skipped.
func Suggest(stats []Stats, isStop func(string) bool, t Thresholds) []Candidate {
	if t == (Thresholds{}) {
		t = DefaultThresholds()
	}
	var out []Candidate
	for _, s := range stats {
		if isStop != nil && isStop(s.Token) {
			continue
		}
		if s.DF < t.MinDF || s.DFPercent <= t.DFPercent {
			continue
		}
		out = append(out, Candidate{
			Token:     s.Token,
			DF:        s.DF,
			DFPercent: s.DFPercent,
			Score:     s.DFPercent / 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Token < out[j].Token
	})
	return out
}
