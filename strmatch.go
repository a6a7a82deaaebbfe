// Package strmatch provides interchangeable exact substring-search engines
// and a selector that predicts which engine suits a given text and pattern.
//
// # Basic Usage
//
// Create a searcher with the default score-based selector:
//
//	searcher, err := strmatch.NewSearcher()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches, err := searcher.Search("abababab", "abab")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(matches) // 0,2,4
//
// # Comparing Engines
//
// Run every engine and check that they agree:
//
//	searcher, err := strmatch.NewSearcher(strmatch.WithStrategy("all"), strmatch.WithVerification())
//	result, err := searcher.SearchContext(ctx, text, pattern)
//	for _, run := range result.Runs {
//	    fmt.Printf("%s: %v in %s\n", run.Algorithm, run.Matches, run.Duration)
//	}
package strmatch

import (
	"context"
	"fmt"

	"github.com/praetorian-inc/strmatch/pkg/engine"
	"github.com/praetorian-inc/strmatch/pkg/harness"
	"github.com/praetorian-inc/strmatch/pkg/selector"
	"github.com/praetorian-inc/strmatch/pkg/types"
	"github.com/rs/zerolog"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/praetorian-inc/strmatch" without subpackages.
type (
	// MatchSet is the ordered list of offsets where a pattern occurs.
	MatchSet = types.MatchSet

	// AlgorithmName identifies one engine.
	AlgorithmName = types.AlgorithmName

	// Engine is a single substring-search algorithm.
	Engine = engine.Engine

	// Selector chooses an engine for a query.
	Selector = selector.Selector

	// Result describes one search, including every engine run.
	Result = harness.Result

	// Occurrence places a match in its text by line and column.
	Occurrence = types.Occurrence
)

// Re-export algorithm names.
const (
	Naive      = types.Naive
	KMP        = types.KMP
	RabinKarp  = types.RabinKarp
	BoyerMoore = types.BoyerMoore
	GoCrazy    = types.GoCrazy
)

// Searcher runs searches through a selector and a fixed engine registry.
// It is safe for concurrent use.
type Searcher struct {
	runner *harness.Runner
}

// searcherConfig holds searcher configuration.
type searcherConfig struct {
	strategy string
	selector selector.Selector
	parallel bool
	verify   bool
	workers  int
	logger   zerolog.Logger
}

// Option configures a Searcher.
type Option func(*searcherConfig)

// WithStrategy selects a named strategy: "score" (default), "heuristic" or "all".
func WithStrategy(name string) Option {
	return func(c *searcherConfig) {
		c.strategy = name
	}
}

// WithSelector uses a custom selector. It takes precedence over WithStrategy.
func WithSelector(sel Selector) Option {
	return func(c *searcherConfig) {
		c.selector = sel
	}
}

// WithParallel runs engines concurrently when every engine runs.
func WithParallel() Option {
	return func(c *searcherConfig) {
		c.parallel = true
	}
}

// WithVerification checks every answer against an independent regexp search.
func WithVerification() Option {
	return func(c *searcherConfig) {
		c.verify = true
	}
}

// WithWorkers bounds the number of engines run at once. Default is NumCPU.
func WithWorkers(workers int) Option {
	return func(c *searcherConfig) {
		c.workers = workers
	}
}

// WithLogger sets the logger used for engine runs. Default discards output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *searcherConfig) {
		c.logger = logger
	}
}

// NewSearcher creates a new Searcher with the given options.
//
// By default, the searcher:
//   - Uses the score-based selector
//   - Runs engines one after another
//   - Does NOT verify results (enable with WithVerification)
func NewSearcher(opts ...Option) (*Searcher, error) {
	cfg := &searcherConfig{
		strategy: selector.DefaultStrategy,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	sel := cfg.selector
	if sel == nil {
		var err error
		sel, err = selector.ByName(cfg.strategy)
		if err != nil {
			return nil, err
		}
	}

	runner, err := harness.New(harness.Config{
		Selector: sel,
		Parallel: cfg.parallel,
		Workers:  cfg.workers,
		Verify:   cfg.verify,
		Logger:   cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create searcher: %w", err)
	}
	return &Searcher{runner: runner}, nil
}

// Search returns every offset where pattern occurs in text.
func (s *Searcher) Search(text, pattern string) (MatchSet, error) {
	result, err := s.SearchContext(context.Background(), text, pattern)
	if err != nil {
		return nil, err
	}
	return result.Matches, nil
}

// SearchContext runs a search and returns the full result, including timing
// and, when every engine ran, whether they agreed.
func (s *Searcher) SearchContext(ctx context.Context, text, pattern string) (*Result, error) {
	return s.runner.Run(ctx, text, pattern)
}

// SearchWith runs the named engine, bypassing the selector.
func (s *Searcher) SearchWith(name AlgorithmName, text, pattern string) (MatchSet, error) {
	result, err := s.runner.RunWith(context.Background(), name, text, pattern)
	if err != nil {
		return nil, err
	}
	return result.Matches, nil
}

// Select reports which engine the selector would run. ok is false when the
// selector runs every engine instead.
func (s *Searcher) Select(text, pattern string) (name AlgorithmName, ok bool) {
	return s.runner.Selector().Select(text, pattern)
}

// Strategy describes the configured selector.
func (s *Searcher) Strategy() string {
	return s.runner.Selector().Describe()
}

// Algorithms lists the available engines in canonical order.
func (s *Searcher) Algorithms() []AlgorithmName {
	return s.runner.Registry().Names()
}

// Locate places each match in text by line and column, with up to width
// bytes of context on either side.
func Locate(text, pattern string, matches MatchSet, width int) []Occurrence {
	return types.Locate(text, len(pattern), matches, width)
}
