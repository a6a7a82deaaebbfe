package suite

import (
	"testing"

	"github.com/praetorian-inc/strmatch/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCase(t *testing.T) {
	tests := []struct {
		name    string
		c       *types.Case
		wantErr string
	}{
		{
			name: "valid case",
			c: &types.Case{
				ID: "ok", Name: "OK", Text: "aaaa",
				Queries: []types.Query{{Pattern: "aa", Expect: types.MatchSet{0, 1, 2}}},
			},
		},
		{
			name: "query without expectation",
			c: &types.Case{
				ID: "ok", Name: "OK", Text: "aaaa",
				Queries: []types.Query{{Pattern: "aa"}},
			},
		},
		{
			name: "empty pattern may expect end offset",
			c: &types.Case{
				ID: "ok", Name: "OK", Text: "ab",
				Queries: []types.Query{{Pattern: "", Expect: types.MatchSet{0, 1, 2}}},
			},
		},
		{
			name:    "nil case",
			c:       nil,
			wantErr: "case is nil",
		},
		{
			name:    "missing id",
			c:       &types.Case{Name: "x", Queries: []types.Query{{Pattern: "a"}}},
			wantErr: "case ID is required",
		},
		{
			name:    "missing name",
			c:       &types.Case{ID: "x", Queries: []types.Query{{Pattern: "a"}}},
			wantErr: "name is required",
		},
		{
			name:    "no queries",
			c:       &types.Case{ID: "x", Name: "X"},
			wantErr: "at least one query",
		},
		{
			name: "unsorted expectation",
			c: &types.Case{
				ID: "x", Name: "X", Text: "aaaa",
				Queries: []types.Query{{Pattern: "a", Expect: types.MatchSet{2, 1}}},
			},
			wantErr: "strictly increasing",
		},
		{
			name: "expectation past end of text",
			c: &types.Case{
				ID: "x", Name: "X", Text: "abc",
				Queries: []types.Query{{Pattern: "bc", Expect: types.MatchSet{2}}},
			},
			wantErr: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCase(tt.c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateCases_Duplicate(t *testing.T) {
	cases := []*types.Case{
		{ID: "dup", Name: "A", Queries: []types.Query{{Pattern: "a"}}},
		{ID: "dup", Name: "B", Queries: []types.Query{{Pattern: "b"}}},
	}
	err := ValidateCases(cases)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate case ID: dup")
}
