package oracle

import (
	"testing"

	"github.com/praetorian-inc/strmatch/pkg/engine"
	"github.com/praetorian-inc/strmatch/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOracle_Search(t *testing.T) {
	o := New(0)

	tests := []struct {
		name    string
		text    string
		pattern string
		want    types.MatchSet
	}{
		{"overlap", "aaaa", "aa", types.MatchSet{0, 1, 2}},
		{"no match", "abcdef", "xyz", types.MatchSet{}},
		{"single match", "hello world", "world", types.MatchSet{6}},
		{"periodic", "abababab", "abab", types.MatchSet{0, 2, 4}},
		{"empty pattern", "abc", "", types.MatchSet{0, 1, 2, 3}},
		{"oversize", "ab", "abc", types.MatchSet{}},
		{"regex metacharacters are literal", "a.b*c a.b*c", ".b*", types.MatchSet{1, 7}},
		{"high bytes are byte offsets", "caf\xc3\xa9 caf\xc3\xa9", "\xc3\xa9", types.MatchSet{3, 9}},
		{"nul bytes", "\x00a\x00a", "\x00a", types.MatchSet{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := o.Search(tt.text, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOracle_AgreesWithEngines(t *testing.T) {
	o := New(0)
	queries := [][2]string{
		{"abracadabra abracadabra", "abra"},
		{"mississippi", "issi"},
		{"ACGTACGTTGCAACGTTGCA", "ACGTTGCA"},
		{"the cat sat on the mat", "at"},
	}

	for _, q := range queries {
		want, err := o.Search(q[0], q[1])
		require.NoError(t, err)
		for _, e := range engine.NewRegistry().Engines() {
			assert.Equal(t, want, e.Search(q[0], q[1]), "%s on %q/%q", e.Name(), q[0], q[1])
		}
	}
}

func TestLookahead(t *testing.T) {
	assert.Equal(t, `(?=\x61\x2E)`, lookahead("a."))
}
