package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/praetorian-inc/strmatch/pkg/harness"
	"github.com/praetorian-inc/strmatch/pkg/obs"
	"github.com/praetorian-inc/strmatch/pkg/selector"
	"github.com/praetorian-inc/strmatch/pkg/types"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	text      string
	file      string
	algorithm string
	strategy  string
	format    string
	color     string
	context   int
	limit     int
	verify    bool
}

// searchOutput is the JSON form of a search.
type searchOutput struct {
	*harness.Result
	Occurrences []types.Occurrence `json:"occurrences"`
}

func newSearchCmd() *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "search <pattern>",
		Short: "Find every occurrence of a pattern",
		Long: `Search text for every occurrence of an exact pattern, including overlapping
occurrences. The selector picks the engine unless --algorithm names one;
with --strategy all every engine runs and their answers are compared.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "Text to search")
	cmd.Flags().StringVar(&opts.file, "file", "", "Read text from file (- for stdin)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "Run this engine instead of asking the selector")
	cmd.Flags().StringVar(&opts.strategy, "strategy", selector.DefaultStrategy, "Selection strategy: score, heuristic, all")
	cmd.Flags().StringVar(&opts.format, "format", "human", "Output format: human, json")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Color output: auto, always, never")
	cmd.Flags().IntVar(&opts.context, "context", 20, "Bytes of context shown around each match")
	cmd.Flags().IntVar(&opts.limit, "limit", 20, "Maximum matches listed in human output (0 = all)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Check results against the regexp oracle")
	return cmd
}

func runSearch(cmd *cobra.Command, opts *searchOptions, pattern string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	text, err := readText(opts.text, opts.file, cmd.InOrStdin())
	if err != nil {
		return err
	}

	sel, err := selector.ByName(flagOr(cmd, "strategy", opts.strategy, cfg.Strategy))
	if err != nil {
		return err
	}

	runner, err := harness.New(harness.Config{
		Selector: sel,
		Parallel: cfg.Parallel,
		Workers:  cfg.Workers,
		Verify:   opts.verify,
		Logger:   obs.Logger("search"),
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	var result *harness.Result
	if opts.algorithm != "" {
		name, err := types.ParseAlgorithmName(opts.algorithm)
		if err != nil {
			return err
		}
		result, err = runner.RunWith(ctx, name, text, pattern)
		if err != nil {
			return err
		}
	} else {
		result, err = runner.Run(ctx, text, pattern)
		if err != nil {
			return err
		}
	}

	occurrences := types.Locate(text, len(pattern), result.Matches, opts.context)

	format := flagOr(cmd, "format", opts.format, cfg.Format)
	switch format {
	case "json":
		return writeJSON(cmd.OutOrStdout(), searchOutput{Result: result, Occurrences: occurrences})
	case "human", "table":
		enabled, err := colorEnabled(flagOr(cmd, "color", opts.color, cfg.Color), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		outputSearchHuman(cmd.OutOrStdout(), newStyles(enabled), sel, result, occurrences, opts.limit)
		if !result.Agreed {
			return fmt.Errorf("engines disagree: %v", result.Disagreements())
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func outputSearchHuman(out io.Writer, s *styles, sel selector.Selector, result *harness.Result, occurrences []types.Occurrence, limit int) {
	if result.Chosen {
		fmt.Fprintf(out, "%s %s\n", s.heading.Sprint("Algorithm:"), s.algorithm.Sprint(result.Selected))
	} else {
		fmt.Fprintf(out, "%s %s\n", s.heading.Sprint("Algorithm:"), s.algorithm.Sprint("all"))
	}
	fmt.Fprintf(out, "%s %s\n", s.heading.Sprint("Strategy:"), sel.Describe())
	fmt.Fprintf(out, "%s %d [%s]\n", s.heading.Sprint("Matches:"), result.Matches.Len(), result.Matches)
	if result.Verified {
		fmt.Fprintf(out, "%s %s\n", s.heading.Sprint("Verified:"), verdict(s, result.Agreed))
	}

	if len(result.Runs) > 1 {
		fmt.Fprintln(out)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Engine\tMatches\tDuration\tStatus\n")
		fmt.Fprintf(w, "------\t-------\t--------\t------\n")
		for _, run := range result.Runs {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", run.Algorithm, run.Matches.Len(), run.Duration, run.Status)
		}
		w.Flush()
	}

	if len(occurrences) > 0 {
		fmt.Fprintln(out)
		printOccurrences(out, s, occurrences, limit)
	}
}

func verdict(s *styles, ok bool) string {
	if ok {
		return s.pass.Sprint("ok")
	}
	return s.fail.Sprint("MISMATCH")
}
