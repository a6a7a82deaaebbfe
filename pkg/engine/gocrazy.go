package engine

import "github.com/praetorian-inc/strmatch/pkg/types"

// shortPatternMax is the longest pattern GoCrazy searches without building
// a shift table.
const shortPatternMax = 5

// GoCrazy is a hybrid engine. Short patterns use a naive scan gated on the
// first character; longer ones use Sunday's Quick Search, which shifts on the
// character just past the current window.
type GoCrazy struct{}

// NewGoCrazy creates the hybrid engine.
func NewGoCrazy() GoCrazy { return GoCrazy{} }

// Name implements Engine.
func (GoCrazy) Name() types.AlgorithmName { return types.GoCrazy }

// Search implements Engine.
func (GoCrazy) Search(text, pattern string) types.MatchSet {
	if ms, ok := trivial(text, pattern); ok {
		return ms
	}
	if len(pattern) <= shortPatternMax {
		return firstByteScan(text, pattern)
	}
	return quickSearch(text, pattern)
}

// SundayShiftTable returns the Quick Search shift for every code unit:
// m+1 for units absent from pattern, otherwise the distance from the unit's
// rightmost occurrence to one past the end of the pattern.
func SundayShiftTable(pattern string) [alphabetSize]int {
	m := len(pattern)
	var shift [alphabetSize]int
	for c := range shift {
		shift[c] = m + 1
	}
	for k := 0; k < m; k++ {
		shift[pattern[k]] = m - k
	}
	return shift
}

func firstByteScan(text, pattern string) types.MatchSet {
	n, m := len(text), len(pattern)
	first := pattern[0]
	matches := types.EmptyMatchSet()

	for i := 0; i <= n-m; i++ {
		if text[i] != first {
			continue
		}
		j := 1
		for j < m && text[i+j] == pattern[j] {
			j++
		}
		if j == m {
			matches = append(matches, i)
		}
	}
	return matches
}

func quickSearch(text, pattern string) types.MatchSet {
	n, m := len(text), len(pattern)
	shift := SundayShiftTable(pattern)
	matches := types.EmptyMatchSet()

	for i := 0; i <= n-m; {
		if equalAt(text, pattern, i) {
			matches = append(matches, i)
		}
		if i+m >= n {
			break
		}
		// Every byte indexes the table; units wider than a byte would
		// fall back to a single-step shift.
		i += shift[text[i+m]]
	}
	return matches
}
