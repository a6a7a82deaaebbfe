package types

import (
	"strconv"
	"strings"
)

// MatchSet is the ordered list of starting offsets where a pattern occurs.
// Offsets are strictly increasing.
type MatchSet []int

// EmptyMatchSet returns a non-nil MatchSet with no offsets.
func EmptyMatchSet() MatchSet {
	return MatchSet{}
}

// AllOffsets returns 0..n inclusive, the result of searching for the
// empty pattern in a text of length n.
func AllOffsets(n int) MatchSet {
	ms := make(MatchSet, n+1)
	for i := range ms {
		ms[i] = i
	}
	return ms
}

// Len returns the number of matches.
func (ms MatchSet) Len() int {
	return len(ms)
}

// Equal reports whether two match sets hold the same offsets in the same order.
// A nil and an empty set are equal.
func (ms MatchSet) Equal(other MatchSet) bool {
	if len(ms) != len(other) {
		return false
	}
	for i := range ms {
		if ms[i] != other[i] {
			return false
		}
	}
	return true
}

// Sorted reports whether offsets are strictly increasing.
func (ms MatchSet) Sorted() bool {
	for i := 1; i < len(ms); i++ {
		if ms[i] <= ms[i-1] {
			return false
		}
	}
	return true
}

// String renders offsets comma-separated, e.g. "0,2,4". An empty set renders as "".
func (ms MatchSet) String() string {
	if len(ms) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, off := range ms {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(off))
	}
	return sb.String()
}

// ParseMatchSet parses the comma-separated form produced by String.
func ParseMatchSet(s string) (MatchSet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EmptyMatchSet(), nil
	}
	parts := strings.Split(s, ",")
	ms := make(MatchSet, 0, len(parts))
	for _, p := range parts {
		off, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ms = append(ms, off)
	}
	return ms, nil
}
