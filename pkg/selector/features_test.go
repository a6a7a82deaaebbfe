package selector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFeatures(t *testing.T) {
	fv := ExtractFeatures("hello world", "world")
	assert.Equal(t, 11, fv.N)
	assert.Equal(t, 5, fv.M)
	assert.Equal(t, 5, fv.Unique)
	assert.InDelta(t, 1.0, fv.UniqueRatio, 1e-9)
	assert.InDelta(t, 0.2, fv.RunRatio, 1e-9)
	assert.InDelta(t, 0.0, fv.BorderRatio, 1e-9)
}

func TestExtractFeatures_EmptyPattern(t *testing.T) {
	fv := ExtractFeatures("abc", "")
	assert.Equal(t, FeatureVector{N: 3}, fv)
}

func TestUniqueCount_Capped(t *testing.T) {
	var sb strings.Builder
	for c := 0; c < 200; c++ {
		sb.WriteByte(byte(c))
	}
	assert.Equal(t, uniqueCap, uniqueCount(sb.String(), uniqueCap))
	assert.Equal(t, 3, uniqueCount("abcabc", uniqueCap))
	assert.Equal(t, 0, uniqueCount("", uniqueCap))
}

func TestMaxRun(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"abc", 1},
		{"aaaaab", 5},
		{"abbbcc", 3},
		{"abcccc", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maxRun(tt.s), "maxRun(%q)", tt.s)
	}
}

func TestBorderLength(t *testing.T) {
	assert.Equal(t, 0, borderLength(""))
	assert.Equal(t, 0, borderLength("a"))
	assert.Equal(t, 2, borderLength("abab"))
	assert.Equal(t, 3, borderLength("aaaa"))
	assert.Equal(t, 4, borderLength("abracadabra"))
	assert.Equal(t, 0, borderLength("abcd"))
}
