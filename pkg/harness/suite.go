package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/praetorian-inc/strmatch/pkg/prefilter"
	"github.com/praetorian-inc/strmatch/pkg/types"
	"golang.org/x/sync/errgroup"
)

// RunCase runs every query of a case and records failures: engine
// disagreement, a mismatch with the case's expected offsets, or a
// mismatch with the Aho-Corasick presence check.
func (r *Runner) RunCase(ctx context.Context, c *types.Case) (*CaseResult, error) {
	start := time.Now()
	cr := &CaseResult{
		CaseID:  c.ID,
		Name:    c.Name,
		Results: make([]*Result, 0, len(c.Queries)),
	}

	present := prefilter.New(c.Patterns()).Present(c.Text)

	for i, q := range c.Queries {
		result, err := r.Run(ctx, c.Text, q.Pattern)
		if err != nil {
			return nil, fmt.Errorf("case %s query %d: %w", c.ID, i, err)
		}
		cr.Results = append(cr.Results, result)

		if !result.Agreed {
			cr.Failures = append(cr.Failures,
				fmt.Sprintf("query %d %q: disagreement from %v", i, q.Pattern, result.Disagreements()))
		}
		if q.HasExpectation() && !result.Matches.Equal(q.Expect) {
			cr.Failures = append(cr.Failures,
				fmt.Sprintf("query %d %q: got [%s], want [%s]", i, q.Pattern, result.Matches, q.Expect))
		}
		if found := result.Matches.Len() > 0; found != present[q.Pattern] {
			cr.Failures = append(cr.Failures,
				fmt.Sprintf("query %d %q: found=%t but prefilter presence=%t", i, q.Pattern, found, present[q.Pattern]))
		}
	}

	cr.Duration = time.Since(start)
	r.logger.Debug().
		Str("case", c.ID).
		Int("queries", len(c.Queries)).
		Int("failures", len(cr.Failures)).
		Dur("duration", cr.Duration).
		Msg("case complete")
	return cr, nil
}

// RunSuite runs cases across a bounded worker pool. Results keep the
// order of cases.
func (r *Runner) RunSuite(ctx context.Context, cases []*types.Case) (*Summary, error) {
	start := time.Now()
	results := make([]*CaseResult, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			cr, err := r.RunCase(gctx, c)
			if err != nil {
				return err
			}
			results[i] = cr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// All goroutines may finish before noticing a cancelled parent.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := r.summarize(results)
	summary.Duration = time.Since(start)
	r.logger.Info().
		Int("cases", summary.TotalCases).
		Int("failed", summary.FailedCases).
		Dur("duration", summary.Duration).
		Msg("suite complete")
	return summary, nil
}

func (r *Runner) summarize(results []*CaseResult) *Summary {
	names := r.registry.Names()
	stats := make(map[types.AlgorithmName]*EngineStat, len(names))
	for _, name := range names {
		stats[name] = &EngineStat{Algorithm: name}
	}

	summary := &Summary{
		Strategy:   r.selector.Describe(),
		Cases:      results,
		TotalCases: len(results),
	}
	for _, cr := range results {
		if cr.Passed() {
			summary.PassedCases++
		} else {
			summary.FailedCases++
		}
		for _, res := range cr.Results {
			if res.Chosen {
				if st, ok := stats[res.Selected]; ok {
					st.Selected++
				}
			}
			for _, run := range res.Runs {
				if st, ok := stats[run.Algorithm]; ok {
					st.Runs++
					st.Total += run.Duration
				}
			}
		}
	}

	summary.Engines = make([]EngineStat, 0, len(names))
	for _, name := range names {
		summary.Engines = append(summary.Engines, *stats[name])
	}
	return summary
}
