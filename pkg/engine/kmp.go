package engine

import "github.com/praetorian-inc/strmatch/pkg/types"

// KMP is the Knuth-Morris-Pratt engine. The failure function lets the scan
// resume after a mismatch or a full match without re-reading matched text,
// giving O(n+m) time.
type KMP struct{}

// NewKMP creates the Knuth-Morris-Pratt engine.
func NewKMP() KMP { return KMP{} }

// Name implements Engine.
func (KMP) Name() types.AlgorithmName { return types.KMP }

// Search implements Engine.
func (KMP) Search(text, pattern string) types.MatchSet {
	if ms, ok := trivial(text, pattern); ok {
		return ms
	}

	n, m := len(text), len(pattern)
	lps := LPS(pattern)
	matches := types.EmptyMatchSet()

	i, j := 0, 0 // text index, pattern index
	for i < n {
		if text[i] == pattern[j] {
			i++
			j++
			if j == m {
				matches = append(matches, i-j)
				j = lps[j-1]
			}
			continue
		}
		if j > 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
	return matches
}

// LPS computes the failure function of pattern: lps[i] is the length of the
// longest proper prefix of pattern[:i+1] that is also a suffix of it.
func LPS(pattern string) []int {
	m := len(pattern)
	lps := make([]int, m)

	length := 0
	for i := 1; i < m; {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length > 0:
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}
	return lps
}
