package main

import (
	"github.com/praetorian-inc/strmatch/pkg/config"
	"github.com/praetorian-inc/strmatch/pkg/obs"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "strmatch",
	Short: "strmatch - exact string matching engines and selector",
	Long: `strmatch searches text with interchangeable exact substring-search engines
(Naive, KMP, Rabin-Karp, Boyer-Moore and GoCrazy) and predicts which engine
best fits a given text and pattern.

The bench command runs a suite of cases through every engine and checks
that all of them agree.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/strmatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newAlgorithmsCmd())
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadSettings reads the config file and initialises logging.
// --verbose and --quiet override the configured log level.
func loadSettings() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	switch {
	case verbose:
		level = "debug"
	case quiet:
		level = "error"
	}
	obs.InitLogger(level)
	return cfg, nil
}

// flagOr returns the flag value when the user set it, else the configured value.
func flagOr[T any](cmd *cobra.Command, name string, flagValue, configured T) T {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configured
}
