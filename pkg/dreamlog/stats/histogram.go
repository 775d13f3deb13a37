package stats

import "strconv"

// DefaultMaxBin is the last unit bin; longer dreams fold into it.
const DefaultMaxBin = 50

// Bin is one histogram bar.
type Bin struct {
	Label string
	Count int
}

// Histogram counts lines into unit bins from 0 to the longest value. The
// bin at maxBin is labelled "maxBin+" and also holds every longer value.
func Histogram(lines []int, maxBin int) []Bin {
	if maxBin <= 0 {
		maxBin = DefaultMaxBin
	}
	longest := 0
	for _, l := range lines {
		if l > longest {
			longest = l
		}
	}
	n := longest + 1
	if n > maxBin+1 {
		n = maxBin + 1
	}
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Label = strconv.Itoa(i)
	}
	if n == maxBin+1 {
		bins[maxBin].Label = strconv.Itoa(maxBin) + "+"
	}
	for _, l := range lines {
		idx := l
		if idx > maxBin {
			idx = maxBin
		}
		if idx >= 0 && idx < n {
			bins[idx].Count++
		}
	}
	return bins
}
