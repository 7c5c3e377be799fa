package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moderncmake/internal/config"
	"moderncmake/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "moderncmake",
	Short: "Modular layout demo: B delegates to A, A joins a counting worker",
	Long: `moderncmake wires two small components together.

Component B owns a handle to Component A and delegates to it. A launches one
worker goroutine that bumps a counter ten times and waits for it before
printing the value.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logging.For(logger, logging.CategoryBoot).Debug("Config loaded",
			zap.String("path", configPath),
			zap.String("level", cfg.Logging.Level),
			zap.String("output", cfg.Output.Target))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "moderncmake.yaml", "Path to YAML config")

	runCmd.Flags().IntVarP(&runTimes, "times", "n", 1, "Number of CallFoo invocations on the same B")
	runCmd.Flags().BoolVar(&runDirect, "direct", false, "Call A.Foo directly instead of going through B")

	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
