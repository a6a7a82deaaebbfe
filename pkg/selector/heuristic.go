package selector

import "github.com/praetorian-inc/strmatch/pkg/types"

// HeuristicSelector is a small decision list over pattern length and the
// repetition of the pattern's first character.
type HeuristicSelector struct{}

// NewHeuristicSelector creates the decision-list strategy.
func NewHeuristicSelector() *HeuristicSelector {
	return &HeuristicSelector{}
}

// Select implements Selector. It always chooses.
func (s *HeuristicSelector) Select(text, pattern string) (types.AlgorithmName, bool) {
	n, m := len(text), len(pattern)
	switch {
	case m <= 3:
		return types.Naive, true
	case repeatsFirstByte(pattern):
		return types.KMP, true
	case m > 10 && n > 1000:
		return types.RabinKarp, true
	default:
		return types.Naive, true
	}
}

// Describe implements Selector.
func (s *HeuristicSelector) Describe() string {
	return "Heuristic: choose based on pattern length and a repeating leading character."
}

// repeatsFirstByte reports whether the first byte occurs at least three
// times within the first five bytes of the pattern.
func repeatsFirstByte(pattern string) bool {
	if len(pattern) < 2 {
		return false
	}
	first := pattern[0]
	count := 0
	for i := 0; i < min(len(pattern), 5); i++ {
		if pattern[i] == first {
			count++
		}
	}
	return count >= 3
}

// RunAll never chooses, so every engine runs and results are compared.
type RunAll struct{}

// Select implements Selector.
func (RunAll) Select(text, pattern string) (types.AlgorithmName, bool) {
	return "", false
}

// Describe implements Selector.
func (RunAll) Describe() string {
	return "No pre-analysis: run every algorithm and compare results."
}
