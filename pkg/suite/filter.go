package suite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/praetorian-inc/strmatch/pkg/types"
)

// FilterConfig specifies include and exclude patterns for case filtering.
type FilterConfig struct {
	Include []string // Regex patterns - only matching cases included
	Exclude []string // Regex patterns - matching cases excluded
}

// ParsePatterns splits a comma-separated string into individual patterns.
// Patterns are trimmed of whitespace.
func ParsePatterns(patterns string) []string {
	if patterns == "" {
		return []string{}
	}

	parts := strings.Split(patterns, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Filter applies include and exclude patterns to cases.
// Include is applied first, then exclude.
// Empty include means "include all".
// Returns error if any pattern is invalid regex.
func Filter(cases []*types.Case, config FilterConfig) ([]*types.Case, error) {
	if len(cases) == 0 {
		return cases, nil
	}

	// Compile include patterns
	var includeRegexes []*regexp.Regexp
	for _, pattern := range config.Include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		includeRegexes = append(includeRegexes, re)
	}

	// Compile exclude patterns
	var excludeRegexes []*regexp.Regexp
	for _, pattern := range config.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		excludeRegexes = append(excludeRegexes, re)
	}

	// Apply include filter
	filtered := cases
	if len(includeRegexes) > 0 {
		filtered = applyInclude(cases, includeRegexes)
	}

	// Apply exclude filter
	if len(excludeRegexes) > 0 {
		filtered = applyExclude(filtered, excludeRegexes)
	}

	return filtered, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func applyInclude(cases []*types.Case, regexes []*regexp.Regexp) []*types.Case {
	result := make([]*types.Case, 0)
	for _, c := range cases {
		if matchesAny(c.ID, regexes) {
			result = append(result, c)
		}
	}
	return result
}

func applyExclude(cases []*types.Case, regexes []*regexp.Regexp) []*types.Case {
	result := make([]*types.Case, 0)
	for _, c := range cases {
		if !matchesAny(c.ID, regexes) {
			result = append(result, c)
		}
	}
	return result
}

func matchesAny(id string, regexes []*regexp.Regexp) bool {
	for _, re := range regexes {
		if re.MatchString(id) {
			return true
		}
	}
	return false
}
