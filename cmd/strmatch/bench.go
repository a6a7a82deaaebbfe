package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/praetorian-inc/strmatch/pkg/harness"
	"github.com/praetorian-inc/strmatch/pkg/obs"
	"github.com/praetorian-inc/strmatch/pkg/selector"
	"github.com/praetorian-inc/strmatch/pkg/suite"
	"github.com/praetorian-inc/strmatch/pkg/types"
	"github.com/spf13/cobra"
)

type benchOptions struct {
	cases        string
	casesInclude string
	casesExclude string
	strategy     string
	workers      int
	repeat       int
	parallel     bool
	format       string
	color        string
	verify       bool
}

func newBenchCmd() *cobra.Command {
	opts := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run benchmark cases through the engines",
		Long: `Run a suite of benchmark cases. Each case is one text searched for one or
more patterns; every answer is checked against the other engines, the
case's expected offsets and an Aho-Corasick presence check.

Without --cases the built-in suite is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.cases, "cases", "", "Path to case file or directory (default: built-in suite)")
	cmd.Flags().StringVar(&opts.casesInclude, "cases-include", "", "Comma-separated regex patterns; only matching case IDs run")
	cmd.Flags().StringVar(&opts.casesExclude, "cases-exclude", "", "Comma-separated regex patterns; matching case IDs are skipped")
	cmd.Flags().StringVar(&opts.strategy, "strategy", selector.StrategyAll, "Selection strategy: score, heuristic, all")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Cases run concurrently (0 = NumCPU)")
	cmd.Flags().IntVar(&opts.repeat, "repeat", 1, "Run each engine this many times and report the mean")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "Run engines concurrently within a query")
	cmd.Flags().StringVar(&opts.format, "format", "human", "Output format: human, json, table")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Color output: auto, always, never")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Check against the regexp oracle and fail on any failed case")
	return cmd
}

func runBench(cmd *cobra.Command, opts *benchOptions) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger := obs.Logger("bench")

	cases, err := loadBenchCases(opts)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return fmt.Errorf("no cases selected")
	}
	logger.Debug().Int("cases", len(cases)).Msg("loaded cases")

	// bench compares every engine unless --strategy says otherwise; the
	// configured strategy does not apply here.
	sel, err := selector.ByName(opts.strategy)
	if err != nil {
		return err
	}

	runner, err := harness.New(harness.Config{
		Selector: sel,
		Parallel: flagOr(cmd, "parallel", opts.parallel, cfg.Parallel),
		Workers:  flagOr(cmd, "workers", opts.workers, cfg.Workers),
		Repeat:   opts.repeat,
		Verify:   opts.verify,
		Logger:   obs.Logger("harness"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := runner.RunSuite(ctx, cases)
	if err != nil {
		return fmt.Errorf("running suite: %w", err)
	}

	out := cmd.OutOrStdout()
	format := flagOr(cmd, "format", opts.format, cfg.Format)
	switch format {
	case "json":
		err = writeJSON(out, summary)
	case "table":
		outputBenchTable(out, summary)
	case "human":
		enabled, colorErr := colorEnabled(flagOr(cmd, "color", opts.color, cfg.Color), out)
		if colorErr != nil {
			return colorErr
		}
		outputBenchHuman(out, newStyles(enabled), summary)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	if err != nil {
		return err
	}

	if opts.verify && summary.Failed() {
		return fmt.Errorf("%d of %d cases failed", summary.FailedCases, summary.TotalCases)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func loadBenchCases(opts *benchOptions) ([]*types.Case, error) {
	loader := suite.NewLoader()

	var cases []*types.Case
	var err error
	if opts.cases != "" {
		cases, err = loader.LoadCasePath(opts.cases)
		if err != nil {
			return nil, fmt.Errorf("loading cases from %s: %w", opts.cases, err)
		}
	} else {
		cases, err = loader.LoadBuiltinCases()
		if err != nil {
			return nil, fmt.Errorf("loading builtin cases: %w", err)
		}
	}

	return suite.Filter(cases, suite.FilterConfig{
		Include: suite.ParsePatterns(opts.casesInclude),
		Exclude: suite.ParsePatterns(opts.casesExclude),
	})
}

func outputBenchHuman(out io.Writer, s *styles, summary *harness.Summary) {
	fmt.Fprintf(out, "%s\n", s.heading.Sprint("=== strmatch bench ==="))
	fmt.Fprintf(out, "Strategy: %s\n\n", summary.Strategy)

	for _, cr := range summary.Cases {
		status := s.pass.Sprint("PASS")
		if !cr.Passed() {
			status = s.fail.Sprint("FAIL")
		}
		fmt.Fprintf(out, "%s %s %s\n", status, s.location.Sprint(cr.CaseID), s.dim.Sprintf("(%d queries, %s)", len(cr.Results), cr.Duration))
		for _, f := range cr.Failures {
			fmt.Fprintf(out, "    %s\n", s.fail.Sprint(f))
		}
	}

	fmt.Fprintln(out)
	outputEngineStats(out, summary)

	fmt.Fprintf(out, "\nCases: %d total, %s, %s in %s\n",
		summary.TotalCases,
		s.pass.Sprintf("%d passed", summary.PassedCases),
		failedText(s, summary.FailedCases),
		summary.Duration)
}

func failedText(s *styles, failed int) string {
	if failed == 0 {
		return fmt.Sprintf("%d failed", failed)
	}
	return s.fail.Sprintf("%d failed", failed)
}

func outputBenchTable(out io.Writer, summary *harness.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Case\tQueries\tDuration\tStatus\n")
	fmt.Fprintf(w, "----\t-------\t--------\t------\n")
	for _, cr := range summary.Cases {
		status := "pass"
		if !cr.Passed() {
			status = fmt.Sprintf("fail (%d)", len(cr.Failures))
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", cr.CaseID, len(cr.Results), cr.Duration, status)
	}
	w.Flush()

	fmt.Fprintln(out)
	outputEngineStats(out, summary)
}

func outputEngineStats(out io.Writer, summary *harness.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Engine\tRuns\tSelected\tTotal\tMean\n")
	fmt.Fprintf(w, "------\t----\t--------\t-----\t----\n")
	for _, st := range summary.Engines {
		mean := "-"
		if st.Runs > 0 {
			mean = (st.Total / time.Duration(st.Runs)).String()
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", st.Algorithm, st.Runs, st.Selected, st.Total, mean)
	}
}
