package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/praetorian-inc/strmatch/pkg/harness"
	"github.com/praetorian-inc/strmatch/pkg/obs"
	"github.com/praetorian-inc/strmatch/pkg/selector"
	"github.com/praetorian-inc/strmatch/pkg/serve"
	"github.com/spf13/cobra"
)

var serveStrategy string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a streaming NDJSON server",
	Long: `Run strmatch as a long-lived server that accepts search and select requests
on stdin and writes one JSON response per line to stdout.

The process builds the engine registry once at startup and processes
requests until stdin closes, a close request arrives, or SIGTERM is received.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveStrategy, "strategy", selector.DefaultStrategy, "Selection strategy: score, heuristic, all")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	sel, err := selector.ByName(flagOr(cmd, "strategy", serveStrategy, cfg.Strategy))
	if err != nil {
		return err
	}

	runner, err := harness.New(harness.Config{
		Selector: sel,
		Parallel: cfg.Parallel,
		Workers:  cfg.Workers,
		Logger:   obs.Logger("harness"),
	})
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	srv := serve.NewServer(runner, cmd.InOrStdin(), cmd.OutOrStdout(), obs.Logger("serve"))
	return srv.Run(ctx)
}
