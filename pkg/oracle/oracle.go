// Package oracle provides a reference search built on a regular expression
// engine. It shares no code with the engines it is used to check.
package oracle

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/praetorian-inc/strmatch/pkg/types"
)

// DefaultTimeout bounds a single oracle search.
const DefaultTimeout = 5 * time.Second

// Oracle finds all occurrences of a pattern with a zero-width lookahead,
// which reports overlapping occurrences that a consuming regex would skip.
type Oracle struct {
	timeout time.Duration
}

// New creates an oracle. A timeout <= 0 selects DefaultTimeout.
func New(timeout time.Duration) *Oracle {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Oracle{timeout: timeout}
}

// Search returns the offsets of every occurrence of pattern in text.
func (o *Oracle) Search(text, pattern string) (types.MatchSet, error) {
	n, m := len(text), len(pattern)
	if m == 0 {
		return types.AllOffsets(n), nil
	}
	if m > n {
		return types.EmptyMatchSet(), nil
	}

	re, err := regexp2.Compile(lookahead(pattern), regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compiling oracle expression for %q: %w", pattern, err)
	}
	re.MatchTimeout = o.timeout

	matches := types.EmptyMatchSet()
	match, err := re.FindRunesMatch(byteRunes(text))
	for match != nil && err == nil {
		matches = append(matches, match.Index)
		match, err = re.FindNextMatch(match)
	}
	if err != nil {
		return nil, fmt.Errorf("oracle search for %q: %w", pattern, err)
	}
	return matches, nil
}

// lookahead builds (?=\xHH\xHH...) matching pattern byte for byte.
func lookahead(pattern string) string {
	var sb strings.Builder
	sb.Grow(len(pattern)*4 + 4)
	sb.WriteString("(?=")
	for i := 0; i < len(pattern); i++ {
		fmt.Fprintf(&sb, `\x%02X`, pattern[i])
	}
	sb.WriteString(")")
	return sb.String()
}

// byteRunes maps every byte to the rune with the same value, so rune
// indexes reported by regexp2 are byte offsets.
func byteRunes(s string) []rune {
	r := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		r[i] = rune(s[i])
	}
	return r
}
