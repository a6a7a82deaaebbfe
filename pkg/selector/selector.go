// Package selector predicts which engine suits a (text, pattern) pair.
//
// Strategies are interchangeable values behind the Selector interface; the
// harness receives one at construction time and never inspects which it got.
package selector

import (
	"fmt"
	"sort"

	"github.com/praetorian-inc/strmatch/pkg/types"
)

// Selector chooses an algorithm for a query.
type Selector interface {
	// Select returns the algorithm to run. ok is false when the strategy
	// declines to choose and every registered engine should run instead.
	Select(text, pattern string) (name types.AlgorithmName, ok bool)

	// Describe returns a human-readable summary of the strategy.
	Describe() string
}

// Strategy names accepted by ByName.
const (
	StrategyScore     = "score"
	StrategyHeuristic = "heuristic"
	StrategyAll       = "all"
)

// DefaultStrategy is the strategy used when none is configured.
const DefaultStrategy = StrategyScore

// ByName creates the strategy registered under name.
func ByName(name string) (Selector, error) {
	switch name {
	case StrategyScore, "":
		return NewScoreSelector(), nil
	case StrategyHeuristic:
		return NewHeuristicSelector(), nil
	case StrategyAll:
		return RunAll{}, nil
	default:
		return nil, fmt.Errorf("unknown selection strategy %q (want one of %v)", name, StrategyNames())
	}
}

// StrategyNames lists the names accepted by ByName.
func StrategyNames() []string {
	names := []string{StrategyScore, StrategyHeuristic, StrategyAll}
	sort.Strings(names)
	return names
}

// boundaryChoice handles inputs that need no feature analysis.
func boundaryChoice(n, m int) (types.AlgorithmName, bool) {
	switch {
	case m == 0:
		return types.KMP, true
	case n == 0:
		return types.Naive, true
	case m > n:
		return types.Naive, true
	}
	return "", false
}
