package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadCharTable(t *testing.T) {
	bc := BadCharTable("abab")
	assert.Equal(t, 2, bc['a'])
	assert.Equal(t, 3, bc['b'])
	assert.Equal(t, -1, bc['c'])
	assert.Equal(t, -1, bc[0xff])
}

func TestGoodSuffixTables(t *testing.T) {
	tests := []struct {
		pattern    string
		wantSuffix []int
		wantPrefix []bool
	}{
		{
			pattern:    "abab",
			wantSuffix: []int{-1, 1, 0, -1},
			wantPrefix: []bool{false, false, true, false},
		},
		{
			pattern:    "abcd",
			wantSuffix: []int{-1, -1, -1, -1},
			wantPrefix: []bool{false, false, false, false},
		},
		{
			pattern:    "aaaa",
			wantSuffix: []int{-1, 2, 1, 0},
			wantPrefix: []bool{false, true, true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			suffix, prefix := GoodSuffixTables(tt.pattern)
			assert.Equal(t, tt.wantSuffix, suffix)
			assert.Equal(t, tt.wantPrefix, prefix)
		})
	}
}

func TestGoodSuffixShift(t *testing.T) {
	suffix, prefix := GoodSuffixTables("abab")

	assert.Equal(t, 1, goodSuffixShift(3, 4, suffix, prefix), "no matched suffix")
	assert.Equal(t, 2, goodSuffixShift(1, 4, suffix, prefix), "matched suffix recurs")
	assert.Equal(t, 2, goodSuffixShift(0, 4, suffix, prefix), "only a border prefix")

	suffix, prefix = GoodSuffixTables("abcd")
	assert.Equal(t, 4, goodSuffixShift(1, 4, suffix, prefix), "nothing recurs")
}

func TestFullMatchShift(t *testing.T) {
	_, prefix := GoodSuffixTables("abab")
	assert.Equal(t, 2, fullMatchShift(4, prefix))

	_, prefix = GoodSuffixTables("aaaa")
	assert.Equal(t, 1, fullMatchShift(4, prefix))

	_, prefix = GoodSuffixTables("abcd")
	assert.Equal(t, 4, fullMatchShift(4, prefix))
}
