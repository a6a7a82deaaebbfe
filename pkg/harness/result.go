package harness

import (
	"fmt"
	"time"

	"github.com/praetorian-inc/strmatch/pkg/types"
)

// RunStatus represents the outcome of one engine invocation.
type RunStatus int

const (
	// RunCompleted indicates the engine agreed with the reference result
	RunCompleted RunStatus = iota
	// RunDisagreed indicates the engine returned different offsets
	RunDisagreed
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	switch rs {
	case RunCompleted:
		return "completed"
	case RunDisagreed:
		return "disagreed"
	default:
		return "unknown"
	}
}

// MarshalText renders the status by name in JSON output.
func (rs RunStatus) MarshalText() ([]byte, error) {
	return []byte(rs.String()), nil
}

// UnmarshalText parses a status written by MarshalText.
func (rs *RunStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "completed":
		*rs = RunCompleted
	case "disagreed":
		*rs = RunDisagreed
	default:
		return fmt.Errorf("unknown run status %q", string(text))
	}
	return nil
}

// EngineRun records one engine's answer for a query.
type EngineRun struct {
	Algorithm types.AlgorithmName `json:"algorithm"`
	Matches   types.MatchSet      `json:"matches"`
	Duration  time.Duration       `json:"duration_ns"` // mean over repeats
	Status    RunStatus           `json:"status"`
}

// Result is the outcome of running one pattern against one text.
type Result struct {
	Pattern    string `json:"pattern"`
	TextLength int    `json:"text_length"`

	// Selected is set when the selector chose an engine; Chosen is false
	// when every registered engine ran instead.
	Selected types.AlgorithmName `json:"selected,omitempty"`
	Chosen   bool                `json:"chosen"`

	// Matches is the selected engine's answer, or the reference answer
	// (first registered engine) when all engines ran.
	Matches types.MatchSet `json:"matches"`
	Runs    []EngineRun    `json:"runs"`

	// Agreed is false when any engine, or the oracle, disagreed.
	Agreed   bool `json:"agreed"`
	Verified bool `json:"verified"` // the oracle was consulted
}

// Disagreements returns the engines whose answer differed from the reference.
func (r *Result) Disagreements() []types.AlgorithmName {
	var out []types.AlgorithmName
	for _, run := range r.Runs {
		if run.Status == RunDisagreed {
			out = append(out, run.Algorithm)
		}
	}
	return out
}

// Run returns the run recorded for an algorithm.
func (r *Result) Run(name types.AlgorithmName) (EngineRun, bool) {
	for _, run := range r.Runs {
		if run.Algorithm == name {
			return run, true
		}
	}
	return EngineRun{}, false
}

// CaseResult contains the results of every query in a benchmark case.
type CaseResult struct {
	CaseID   string        `json:"case_id"`
	Name     string        `json:"name"`
	Results  []*Result     `json:"results"`
	Failures []string      `json:"failures,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Passed reports whether the case produced no failures.
func (cr *CaseResult) Passed() bool {
	return len(cr.Failures) == 0
}

// EngineStat aggregates one engine's work across a suite.
type EngineStat struct {
	Algorithm types.AlgorithmName `json:"algorithm"`
	Runs      int                 `json:"runs"`
	Selected  int                 `json:"selected"` // times the selector picked it
	Total     time.Duration       `json:"total_ns"`
}

// Summary provides aggregate statistics for a suite run.
type Summary struct {
	Strategy    string        `json:"strategy"`
	Cases       []*CaseResult `json:"cases"`
	TotalCases  int           `json:"total_cases"`
	PassedCases int           `json:"passed_cases"`
	FailedCases int           `json:"failed_cases"`
	Engines     []EngineStat  `json:"engines"`
	Duration    time.Duration `json:"duration_ns"`
}

// Failed reports whether any case failed.
func (s *Summary) Failed() bool {
	return s.FailedCases > 0
}
