package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/praetorian-inc/strmatch/pkg/selector"
	"github.com/praetorian-inc/strmatch/pkg/types"
	"github.com/spf13/cobra"
)

type selectOptions struct {
	text     string
	file     string
	strategy string
	format   string
	scores   bool
}

// selectOutput is the JSON form of a selection.
type selectOutput struct {
	Algorithm types.AlgorithmName     `json:"algorithm,omitempty"`
	Chosen    bool                    `json:"chosen"`
	Strategy  string                  `json:"strategy"`
	Features  *selector.FeatureVector `json:"features,omitempty"`
	Scores    selector.ScoreTable     `json:"scores,omitempty"`
}

func newSelectCmd() *cobra.Command {
	opts := &selectOptions{}
	cmd := &cobra.Command{
		Use:   "select <pattern>",
		Short: "Show which engine the selector would run",
		Long: `Ask the selection strategy which engine suits the text and pattern,
without searching. --scores also prints the pattern features and the score
of every engine (score strategy only).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "Text to analyse")
	cmd.Flags().StringVar(&opts.file, "file", "", "Read text from file (- for stdin)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", selector.DefaultStrategy, "Selection strategy: score, heuristic, all")
	cmd.Flags().StringVar(&opts.format, "format", "human", "Output format: human, json")
	cmd.Flags().BoolVar(&opts.scores, "scores", false, "Include features and per-engine scores")
	return cmd
}

func runSelect(cmd *cobra.Command, opts *selectOptions, pattern string) error {
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

	name, ok := sel.Select(text, pattern)
	result := selectOutput{
		Algorithm: name,
		Chosen:    ok,
		Strategy:  sel.Describe(),
	}
	if scorer, isScore := sel.(*selector.ScoreSelector); isScore && opts.scores {
		fv, scores := scorer.Scores(text, pattern)
		result.Features = &fv
		result.Scores = scores
	}

	format := flagOr(cmd, "format", opts.format, cfg.Format)
	switch format {
	case "json":
		return writeJSON(cmd.OutOrStdout(), result)
	case "human", "table":
		outputSelectHuman(cmd.OutOrStdout(), result)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func outputSelectHuman(out io.Writer, result selectOutput) {
	if result.Chosen {
		fmt.Fprintf(out, "Algorithm: %s\n", result.Algorithm)
	} else {
		fmt.Fprintf(out, "Algorithm: none (all engines run)\n")
	}
	fmt.Fprintf(out, "Strategy: %s\n", result.Strategy)

	if result.Features == nil {
		return
	}
	fv := result.Features
	fmt.Fprintf(out, "\nFeatures: n=%d m=%d unique=%d unique_ratio=%.3f run_ratio=%.3f border_ratio=%.3f\n\n",
		fv.N, fv.M, fv.Unique, fv.UniqueRatio, fv.RunRatio, fv.BorderRatio)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintf(w, "Engine\tScore\n")
	fmt.Fprintf(w, "------\t-----\n")
	for _, name := range types.Algorithms() {
		marker := ""
		if name == result.Algorithm {
			marker = " *"
		}
		fmt.Fprintf(w, "%s\t%.3f%s\n", name, result.Scores[name], marker)
	}
}
