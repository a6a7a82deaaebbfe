// Package prefilter decides which of many patterns occur in a text with a
// single Aho-Corasick pass.
package prefilter

import (
	"github.com/cloudflare/ahocorasick"
)

// Prefilter uses Aho-Corasick for efficient presence checks.
// A Prefilter is not safe for concurrent use; build one per goroutine.
type Prefilter struct {
	matcher  *ahocorasick.Matcher
	patterns []string       // pattern at each dictionary index
	index    map[string]int // pattern -> dictionary index
	hasEmpty bool           // the empty pattern occurs in every text
}

// New creates a prefilter for patterns. Duplicates are ignored.
func New(patterns []string) *Prefilter {
	pf := &Prefilter{
		index: make(map[string]int),
	}

	for _, p := range patterns {
		if p == "" {
			pf.hasEmpty = true
			continue
		}
		if _, seen := pf.index[p]; seen {
			continue
		}
		pf.index[p] = len(pf.patterns)
		pf.patterns = append(pf.patterns, p)
	}

	// Build Aho-Corasick matcher if we have patterns
	if len(pf.patterns) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.patterns)
	}

	return pf
}

// Present returns the set of patterns that occur at least once in text.
func (pf *Prefilter) Present(text string) map[string]bool {
	present := make(map[string]bool, len(pf.patterns)+1)
	if pf.hasEmpty {
		present[""] = true
	}
	if pf.matcher == nil {
		return present
	}

	for _, hit := range pf.matcher.Match([]byte(text)) {
		present[pf.patterns[hit]] = true
	}
	return present
}

// Known reports whether pattern was given to New.
func (pf *Prefilter) Known(pattern string) bool {
	if pattern == "" {
		return pf.hasEmpty
	}
	_, ok := pf.index[pattern]
	return ok
}

// Len returns the number of distinct patterns, counting the empty pattern.
func (pf *Prefilter) Len() int {
	if pf.hasEmpty {
		return len(pf.patterns) + 1
	}
	return len(pf.patterns)
}
