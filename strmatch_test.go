package strmatch

import (
	"context"
	"errors"
	"testing"

	"github.com/praetorian-inc/strmatch/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearcher(t *testing.T) {
	searcher, err := NewSearcher()
	require.NoError(t, err)

	assert.Equal(t, []AlgorithmName{Naive, KMP, RabinKarp, BoyerMoore, GoCrazy}, searcher.Algorithms())
	assert.Contains(t, searcher.Strategy(), "Score-based")
}

func TestNewSearcher_UnknownStrategy(t *testing.T) {
	_, err := NewSearcher(WithStrategy("fastest"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown selection strategy")
}

func TestNewSearcher_InvalidWorkers(t *testing.T) {
	_, err := NewSearcher(WithWorkers(-1))
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    MatchSet
	}{
		{"overlap", "aaaa", "aa", MatchSet{0, 1, 2}},
		{"no match", "abcdef", "xyz", MatchSet{}},
		{"single", "hello world", "world", MatchSet{6}},
		{"periodic", "abababab", "abab", MatchSet{0, 2, 4}},
		{"empty pattern", "abc", "", MatchSet{0, 1, 2, 3}},
		{"oversize", "ab", "abc", MatchSet{}},
	}

	searcher, err := NewSearcher()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := searcher.Search(tt.text, tt.pattern)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.NotNil(t, got)
		})
	}
}

func TestSearchContext_AllEnginesVerified(t *testing.T) {
	searcher, err := NewSearcher(WithStrategy("all"), WithParallel(), WithVerification(), WithWorkers(2))
	require.NoError(t, err)

	result, err := searcher.SearchContext(context.Background(), "mississippi", "issi")
	require.NoError(t, err)
	assert.False(t, result.Chosen)
	assert.True(t, result.Agreed)
	assert.True(t, result.Verified)
	assert.Len(t, result.Runs, 5)
	assert.Equal(t, MatchSet{1, 4}, result.Matches)
}

func TestSearchWith(t *testing.T) {
	searcher, err := NewSearcher()
	require.NoError(t, err)

	for _, name := range searcher.Algorithms() {
		got, err := searcher.SearchWith(name, "mississippi", "ss")
		require.NoError(t, err)
		assert.Equal(t, MatchSet{2, 5}, got, name.String())
	}

	_, err = searcher.SearchWith("Quantum", "a", "a")
	var lookupErr *engine.LookupError
	assert.True(t, errors.As(err, &lookupErr))
}

func TestSelect(t *testing.T) {
	searcher, err := NewSearcher()
	require.NoError(t, err)

	name, ok := searcher.Select("abc", "")
	assert.True(t, ok)
	assert.Equal(t, KMP, name)

	all, err := NewSearcher(WithStrategy("all"))
	require.NoError(t, err)
	_, ok = all.Select("abc", "b")
	assert.False(t, ok)
}

type alwaysBoyerMoore struct{}

func (alwaysBoyerMoore) Select(text, pattern string) (AlgorithmName, bool) { return BoyerMoore, true }
func (alwaysBoyerMoore) Describe() string { return "always Boyer-Moore" }

func TestWithSelector(t *testing.T) {
	searcher, err := NewSearcher(WithStrategy("heuristic"), WithSelector(alwaysBoyerMoore{}))
	require.NoError(t, err)
	assert.Equal(t, "always Boyer-Moore", searcher.Strategy())

	result, err := searcher.SearchContext(context.Background(), "xxabxx", "ab")
	require.NoError(t, err)
	assert.Equal(t, BoyerMoore, result.Selected)
	assert.Equal(t, MatchSet{2}, result.Matches)
}

func TestLocate(t *testing.T) {
	occ := Locate("one\ntwo two", "two", MatchSet{4, 8}, 2)
	require.Len(t, occ, 2)
	assert.Equal(t, 2, occ[0].Line)
	assert.Equal(t, 1, occ[0].Column)
	assert.Equal(t, 5, occ[1].Column)
	assert.Equal(t, "two", occ[1].Snippet.Matching)
	assert.Equal(t, "o ", occ[1].Snippet.Before)
}
