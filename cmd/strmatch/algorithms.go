package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/praetorian-inc/strmatch/pkg/engine"
	"github.com/praetorian-inc/strmatch/pkg/types"
	"github.com/spf13/cobra"
)

// algorithmSummaries describes each engine for the algorithms listing.
var algorithmSummaries = map[types.AlgorithmName]string{
	types.Naive:      "Compare the pattern at every alignment",
	types.KMP:        "Knuth-Morris-Pratt failure function, never re-reads text",
	types.RabinKarp:  "Rolling hash (prime 101, radix 256) with verification",
	types.BoyerMoore: "Right-to-left compare with bad-character and good-suffix shifts",
	types.GoCrazy:    "First-byte gated scan for m <= 5, Sunday quick search otherwise",
}

type algorithmInfo struct {
	Name        types.AlgorithmName `json:"name"`
	Description string              `json:"description"`
}

func newAlgorithmsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List available engines",
		Long:  "Display every registered search engine in selector tie-break order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlgorithms(cmd, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json")
	return cmd
}

func runAlgorithms(cmd *cobra.Command, format string) error {
	reg := engine.NewRegistry()
	infos := make([]algorithmInfo, 0, reg.Len())
	for _, name := range reg.Names() {
		infos = append(infos, algorithmInfo{Name: name, Description: algorithmSummaries[name]})
	}

	switch format {
	case "json":
		return writeJSON(cmd.OutOrStdout(), infos)
	case "table":
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		defer w.Flush()
		fmt.Fprintf(w, "Name\tDescription\n")
		fmt.Fprintf(w, "----\t-----------\n")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\n", info.Name, info.Description)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
