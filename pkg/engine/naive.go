package engine

import "github.com/praetorian-inc/strmatch/pkg/types"

// Naive slides a window over every offset and compares character by character.
// O(n·m) worst case, no preprocessing.
type Naive struct{}

// NewNaive creates the brute-force engine.
func NewNaive() Naive { return Naive{} }

// Name implements Engine.
func (Naive) Name() types.AlgorithmName { return types.Naive }

// Search implements Engine.
func (Naive) Search(text, pattern string) types.MatchSet {
	if ms, ok := trivial(text, pattern); ok {
		return ms
	}

	n, m := len(text), len(pattern)
	matches := types.EmptyMatchSet()
	for i := 0; i <= n-m; i++ {
		if equalAt(text, pattern, i) {
			matches = append(matches, i)
		}
	}
	return matches
}
