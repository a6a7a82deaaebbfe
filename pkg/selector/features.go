package selector

import "github.com/praetorian-inc/strmatch/pkg/engine"

// uniqueCap bounds the distinct-character count. Once this many distinct
// characters are seen the pattern counts as having a large alphabet.
const uniqueCap = 128

// FeatureVector is the set of cheap pattern/text properties the score
// strategy works from.
type FeatureVector struct {
	N           int     `json:"n"`            // text length
	M           int     `json:"m"`            // pattern length
	Unique      int     `json:"unique"`       // distinct pattern characters, capped at 128
	UniqueRatio float64 `json:"unique_ratio"` // Unique / M
	RunRatio    float64 `json:"run_ratio"`    // longest run of one character / M
	BorderRatio float64 `json:"border_ratio"` // longest border of the pattern / M
}

// ExtractFeatures computes the feature vector for a query.
// Ratios are zero for an empty pattern.
func ExtractFeatures(text, pattern string) FeatureVector {
	m := len(pattern)
	fv := FeatureVector{
		N:      len(text),
		M:      m,
		Unique: uniqueCount(pattern, uniqueCap),
	}
	if m == 0 {
		return fv
	}
	fv.UniqueRatio = float64(fv.Unique) / float64(m)
	fv.RunRatio = float64(maxRun(pattern)) / float64(m)
	fv.BorderRatio = float64(borderLength(pattern)) / float64(m)
	return fv
}

func uniqueCount(s string, limit int) int {
	var seen [256]bool
	count := 0
	for i := 0; i < len(s) && count < limit; i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			count++
		}
	}
	return count
}

// maxRun returns the length of the longest run of one repeated character.
func maxRun(s string) int {
	if s == "" {
		return 0
	}
	best, cur := 1, 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			cur++
		} else {
			cur = 1
		}
		best = max(best, cur)
	}
	return best
}

// borderLength is the longest proper prefix of s that is also a suffix.
func borderLength(s string) int {
	if len(s) <= 1 {
		return 0
	}
	lps := engine.LPS(s)
	return lps[len(s)-1]
}
