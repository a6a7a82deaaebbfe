// Package engine implements the exact substring-search engines and the
// registry that maps algorithm names to them.
//
// Every engine reports all starting offsets of pattern in text, overlapping
// occurrences included, in increasing order. Engines hold no state between
// calls; any preprocessing tables are built per call, so a single engine
// value may be shared by any number of goroutines.
package engine

import "github.com/praetorian-inc/strmatch/pkg/types"

// Engine finds every exact occurrence of a pattern in a text.
type Engine interface {
	// Name returns the algorithm implemented by the engine.
	Name() types.AlgorithmName

	// Search returns the starting offsets of all occurrences of pattern in text.
	// An empty pattern matches at every offset 0..len(text).
	// A pattern longer than the text yields an empty, non-nil set.
	Search(text, pattern string) types.MatchSet
}

// alphabetSize is the number of distinct code units. Strings are searched
// byte by byte, so every table indexed by code unit has 256 entries.
const alphabetSize = 256

// trivial answers the inputs every engine handles identically.
// ok is false when the engine has to run its own scan.
func trivial(text, pattern string) (ms types.MatchSet, ok bool) {
	n, m := len(text), len(pattern)
	if m == 0 {
		return types.AllOffsets(n), true
	}
	if m > n {
		return types.EmptyMatchSet(), true
	}
	return nil, false
}

// equalAt compares pattern with text[i:i+len(pattern)] left to right,
// stopping at the first mismatch.
func equalAt(text, pattern string, i int) bool {
	for j := 0; j < len(pattern); j++ {
		if text[i+j] != pattern[j] {
			return false
		}
	}
	return true
}
