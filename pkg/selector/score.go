package selector

import "github.com/praetorian-inc/strmatch/pkg/types"

// ScoreTable holds one score per algorithm.
type ScoreTable map[types.AlgorithmName]float64

// Best returns the highest-scoring algorithm. Algorithms are visited in
// canonical order and a later one only wins with a strictly greater score,
// so ties go to Naive, then KMP, RabinKarp, BoyerMoore, GoCrazy.
func (t ScoreTable) Best() types.AlgorithmName {
	order := types.Algorithms()
	best := order[0]
	bestScore := t[best]
	for _, name := range order[1:] {
		if score := t[name]; score > bestScore {
			best, bestScore = name, score
		}
	}
	return best
}

// ScoreSelector rates every algorithm with a linear function of the query's
// features and picks the best.
type ScoreSelector struct{}

// NewScoreSelector creates the score-based strategy.
func NewScoreSelector() *ScoreSelector {
	return &ScoreSelector{}
}

// Select implements Selector. It always chooses.
func (s *ScoreSelector) Select(text, pattern string) (types.AlgorithmName, bool) {
	if name, ok := boundaryChoice(len(text), len(pattern)); ok {
		return name, true
	}
	return Score(ExtractFeatures(text, pattern)).Best(), true
}

// Scores returns the features and score table behind a decision.
func (s *ScoreSelector) Scores(text, pattern string) (FeatureVector, ScoreTable) {
	fv := ExtractFeatures(text, pattern)
	return fv, Score(fv)
}

// Describe implements Selector.
func (s *ScoreSelector) Describe() string {
	return "Score-based pre-analysis: compute pattern features (unique ratio, runs, border overlap) and sizes (n, m), then choose the highest-scoring algorithm."
}

// Score evaluates the linear score of every algorithm for fv.
func Score(fv FeatureVector) ScoreTable {
	n, m := fv.N, fv.M

	// Naive: no preprocessing, good for short patterns and small inputs
	naive := 8.0
	naive += when(m <= 4, 6, 0)
	naive += when(n <= 200, 2, 0)
	naive -= when(n > 5000, 3, 0)

	// KMP: rewards self-overlap and repetition, too much setup for tiny patterns
	kmp := 4.0
	kmp += 10 * fv.BorderRatio
	kmp += 6 * fv.RunRatio
	kmp -= when(m <= 3, 3, 0)

	// Rabin-Karp: hashing amortises over large texts
	rk := 3.0
	rk += when(n > 1500, 5, 0)
	rk += when(m >= 8, 2, -1)
	rk += when(fv.UniqueRatio >= 0.6, 1, 0)

	// Boyer-Moore: long patterns over a large alphabet skip the most
	bm := 3.0
	bm += when(m >= 10, 4, -1)
	bm += 8 * fv.UniqueRatio
	bm += when(n >= 800, 2, 0)
	bm -= when(fv.Unique <= 3, 3, 0)

	// GoCrazy: small alphabets and mid-length patterns
	gc := 2.0
	gc += when(fv.Unique <= 4, 5, 0)
	gc += when(m >= 5 && m <= 20, 2, 0)
	gc += when(n >= 200, 1.5, 0)

	return ScoreTable{
		types.Naive:      naive,
		types.KMP:        kmp,
		types.RabinKarp:  rk,
		types.BoyerMoore: bm,
		types.GoCrazy:    gc,
	}
}

func when(cond bool, yes, no float64) float64 {
	if cond {
		return yes
	}
	return no
}
