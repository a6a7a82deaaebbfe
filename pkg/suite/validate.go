package suite

import (
	"fmt"

	"github.com/praetorian-inc/strmatch/pkg/types"
)

// ValidateCase checks case consistency and required fields.
// Returns error if case is invalid.
func ValidateCase(c *types.Case) error {
	if c == nil {
		return fmt.Errorf("case is nil")
	}

	// Check required fields
	if c.ID == "" {
		return fmt.Errorf("case ID is required")
	}
	if c.Name == "" {
		return fmt.Errorf("case %s: name is required", c.ID)
	}
	if len(c.Queries) == 0 {
		return fmt.Errorf("case %s: at least one query is required", c.ID)
	}

	// Expected offsets must be a valid match set for this text
	for i, q := range c.Queries {
		if !q.HasExpectation() {
			continue
		}
		if !q.Expect.Sorted() {
			return fmt.Errorf("case %s query %d: expected offsets must be strictly increasing", c.ID, i)
		}
		for _, off := range q.Expect {
			if off < 0 || off+len(q.Pattern) > len(c.Text) {
				return fmt.Errorf("case %s query %d: expected offset %d out of range", c.ID, i, off)
			}
		}
	}

	return nil
}

// ValidateCases validates each case and checks that IDs are unique.
func ValidateCases(cases []*types.Case) error {
	seen := make(map[string]bool, len(cases))
	for _, c := range cases {
		if err := ValidateCase(c); err != nil {
			return err
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate case ID: %s", c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}
