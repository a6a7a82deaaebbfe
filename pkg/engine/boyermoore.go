package engine

import "github.com/praetorian-inc/strmatch/pkg/types"

// BoyerMoore compares each window right to left and advances by the larger
// of the bad-character and good-suffix shifts.
type BoyerMoore struct{}

// NewBoyerMoore creates the Boyer-Moore engine.
func NewBoyerMoore() BoyerMoore { return BoyerMoore{} }

// Name implements Engine.
func (BoyerMoore) Name() types.AlgorithmName { return types.BoyerMoore }

// Search implements Engine.
func (BoyerMoore) Search(text, pattern string) types.MatchSet {
	if ms, ok := trivial(text, pattern); ok {
		return ms
	}

	n, m := len(text), len(pattern)
	bc := BadCharTable(pattern)
	suffix, prefix := GoodSuffixTables(pattern)
	matches := types.EmptyMatchSet()

	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}

		if j < 0 {
			matches = append(matches, i)
			i += fullMatchShift(m, prefix)
			continue
		}

		bcShift := j - bc[text[i+j]]
		if bcShift < 1 {
			bcShift = 1
		}
		i += max(bcShift, goodSuffixShift(j, m, suffix, prefix))
	}
	return matches
}

// BadCharTable returns the index of the last occurrence of every code unit
// in pattern, or -1 for code units the pattern does not contain.
func BadCharTable(pattern string) [alphabetSize]int {
	var bc [alphabetSize]int
	for i := range bc {
		bc[i] = -1
	}
	for i := 0; i < len(pattern); i++ {
		bc[pattern[i]] = i
	}
	return bc
}

// GoodSuffixTables builds the good-suffix tables for pattern.
//
// suffix[k] is the start of the rightmost occurrence, other than the pattern's
// own tail, of the length-k suffix of pattern, or -1 if there is none.
// prefix[k] reports whether the length-k suffix is also a prefix of pattern.
func GoodSuffixTables(pattern string) (suffix []int, prefix []bool) {
	m := len(pattern)
	suffix = make([]int, m)
	prefix = make([]bool, m)
	for i := range suffix {
		suffix[i] = -1
	}

	for i := 0; i < m-1; i++ {
		j := i
		k := 0
		for j >= 0 && pattern[j] == pattern[m-1-k] {
			j--
			k++
			suffix[k] = j + 1
		}
		if j == -1 {
			prefix[k] = true
		}
	}
	return suffix, prefix
}

// goodSuffixShift is the shift after a mismatch at pattern index j.
func goodSuffixShift(j, m int, suffix []int, prefix []bool) int {
	k := m - 1 - j // length of the matched suffix
	if k <= 0 {
		return 1
	}
	if suffix[k] != -1 {
		return j - suffix[k] + 1
	}
	for r := j + 2; r <= m-1; r++ {
		if prefix[m-r] {
			return r
		}
	}
	return m
}

// fullMatchShift aligns the longest border of the pattern with the end of
// the match, so overlapping occurrences are not skipped.
func fullMatchShift(m int, prefix []bool) int {
	for k := m - 1; k >= 1; k-- {
		if prefix[k] {
			return m - k
		}
	}
	return m
}
