// Package harness runs the selector and engines over texts and benchmark
// cases, timing each engine and checking that all answers agree.
package harness

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/praetorian-inc/strmatch/pkg/engine"
	"github.com/praetorian-inc/strmatch/pkg/oracle"
	"github.com/praetorian-inc/strmatch/pkg/selector"
	"github.com/praetorian-inc/strmatch/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Config holds harness configuration.
type Config struct {
	Registry *engine.Registry  // defaults to engine.NewRegistry()
	Selector selector.Selector // defaults to the score strategy

	// Parallel runs engines concurrently when the selector declines to choose.
	Parallel bool
	// Workers bounds concurrent engines and concurrent suite cases.
	// Zero means runtime.NumCPU().
	Workers int
	// Repeat runs each engine this many times and reports the mean duration.
	Repeat int
	// Verify checks every answer against the regexp oracle.
	Verify bool

	Logger zerolog.Logger
}

// Runner executes queries. It is safe for concurrent use.
type Runner struct {
	registry *engine.Registry
	selector selector.Selector
	oracle   *oracle.Oracle
	parallel bool
	workers  int
	repeat   int
	logger   zerolog.Logger
}

// New creates a runner, filling unset Config fields with defaults.
func New(cfg Config) (*Runner, error) {
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must be >= 0, got %d", cfg.Workers)
	}
	if cfg.Repeat < 0 {
		return nil, fmt.Errorf("repeat must be >= 0, got %d", cfg.Repeat)
	}

	r := &Runner{
		registry: cfg.Registry,
		selector: cfg.Selector,
		parallel: cfg.Parallel,
		workers:  cfg.Workers,
		repeat:   cfg.Repeat,
		logger:   cfg.Logger,
	}
	if r.registry == nil {
		r.registry = engine.NewRegistry()
	}
	if r.selector == nil {
		r.selector = selector.NewScoreSelector()
	}
	if r.workers == 0 {
		r.workers = max(runtime.NumCPU(), 1)
	}
	if r.repeat == 0 {
		r.repeat = 1
	}
	if cfg.Verify {
		r.oracle = oracle.New(0)
	}
	return r, nil
}

// Registry returns the registry engines are resolved from.
func (r *Runner) Registry() *engine.Registry {
	return r.registry
}

// Selector returns the configured selection strategy.
func (r *Runner) Selector() selector.Selector {
	return r.selector
}

// Run asks the selector for an engine and runs it. When the selector
// declines, every registered engine runs and their answers are compared.
func (r *Runner) Run(ctx context.Context, text, pattern string) (*Result, error) {
	name, ok := r.selector.Select(text, pattern)
	if !ok {
		return r.RunAll(ctx, text, pattern)
	}
	return r.RunWith(ctx, name, text, pattern)
}

// RunWith runs a single named engine, bypassing the selector.
func (r *Runner) RunWith(ctx context.Context, name types.AlgorithmName, text, pattern string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e, err := r.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("resolving selected engine: %w", err)
	}

	run := r.invoke(e, text, pattern)
	result := &Result{
		Pattern:    pattern,
		TextLength: len(text),
		Selected:   name,
		Chosen:     true,
		Matches:    run.Matches,
		Runs:       []EngineRun{run},
		Agreed:     true,
	}
	if err := r.verify(result, text); err != nil {
		return nil, err
	}
	return result, nil
}

// RunAll runs every registered engine and compares their answers with the
// first engine's.
func (r *Runner) RunAll(ctx context.Context, text, pattern string) (*Result, error) {
	engines := r.registry.Engines()
	runs := make([]EngineRun, len(engines))

	if r.parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.workers)
		for i, e := range engines {
			i, e := i, e
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				runs[i] = r.invoke(e, text, pattern)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, e := range engines {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			runs[i] = r.invoke(e, text, pattern)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Pattern:    pattern,
		TextLength: len(text),
		Runs:       runs,
		Agreed:     true,
	}
	if len(runs) > 0 {
		result.Matches = runs[0].Matches
	}
	for i := range runs {
		if !runs[i].Matches.Equal(result.Matches) {
			runs[i].Status = RunDisagreed
			result.Agreed = false
		}
	}
	if !result.Agreed {
		r.logger.Warn().
			Str("pattern", pattern).
			Interface("disagreed", result.Disagreements()).
			Msg("engines disagree")
	}

	if err := r.verify(result, text); err != nil {
		return nil, err
	}
	return result, nil
}

// invoke runs one engine r.repeat times.
func (r *Runner) invoke(e engine.Engine, text, pattern string) EngineRun {
	var matches types.MatchSet
	start := time.Now()
	for i := 0; i < r.repeat; i++ {
		matches = e.Search(text, pattern)
	}
	elapsed := time.Since(start) / time.Duration(r.repeat)

	r.logger.Debug().
		Str("algorithm", e.Name().String()).
		Int("text_len", len(text)).
		Int("pattern_len", len(pattern)).
		Int("matches", len(matches)).
		Dur("duration", elapsed).
		Msg("engine run")

	return EngineRun{
		Algorithm: e.Name(),
		Matches:   matches,
		Duration:  elapsed,
		Status:    RunCompleted,
	}
}

// verify compares every run with the oracle when verification is enabled.
func (r *Runner) verify(result *Result, text string) error {
	if r.oracle == nil {
		return nil
	}
	want, err := r.oracle.Search(text, result.Pattern)
	if err != nil {
		return fmt.Errorf("verifying result: %w", err)
	}
	result.Verified = true
	for i := range result.Runs {
		if !result.Runs[i].Matches.Equal(want) {
			result.Runs[i].Status = RunDisagreed
			result.Agreed = false
		}
	}
	return nil
}
