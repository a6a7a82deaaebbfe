package types

// Case is a named benchmark input: one text searched for one or more patterns.
type Case struct {
	ID          string   // e.g., "law.overlap"
	Name        string   // human-readable name
	Description string   // optional
	Text        string   // text to search, already expanded if generated
	Categories  []string // classification tags
	Queries     []Query
}

// Query is one pattern searched in a case's text.
type Query struct {
	Pattern string
	// Expect holds the offsets the query must produce. nil means the case
	// only checks that engines agree with each other.
	Expect MatchSet
}

// HasExpectation reports whether the query pins its result.
func (q Query) HasExpectation() bool {
	return q.Expect != nil
}

// Patterns returns the patterns of all queries, in order.
func (c *Case) Patterns() []string {
	out := make([]string, len(c.Queries))
	for i, q := range c.Queries {
		out[i] = q.Pattern
	}
	return out
}
