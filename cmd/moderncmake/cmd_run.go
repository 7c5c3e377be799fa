package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moderncmake/internal/config"
	"moderncmake/internal/modulea"
	"moderncmake/internal/moduleb"
)

var (
	runTimes  int
	runDirect bool
)

// runCmd builds a B and calls through it
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Construct B and call CallFoo",
	Long: `Constructs a B (which constructs its A) and calls CallFoo.

With --times the same B is reused, so the reported value grows by 10 per call.
With --direct, A.Foo is called without going through B.`,
	Args: cobra.NoArgs,
	RunE: runFoo,
}

func runFoo(cmd *cobra.Command, args []string) error {
	if runTimes < 1 {
		return fmt.Errorf("--times must be at least 1, got %d", runTimes)
	}
	out := outputFor(cmd, cfg)

	if runDirect {
		a := modulea.New(modulea.WithOutput(out), modulea.WithLogger(logger))
		for i := 0; i < runTimes; i++ {
			a.Foo()
		}
		logger.Info("Run complete", zap.Bool("direct", true), zap.Int("value", a.Value()))
		return nil
	}

	b := moduleb.New(moduleb.WithOutput(out), moduleb.WithLogger(logger))
	defer func() { _ = b.Close() }()

	for i := 0; i < runTimes; i++ {
		if err := b.CallFoo(); err != nil {
			return fmt.Errorf("call %d: %w", i+1, err)
		}
	}
	logger.Info("Run complete", zap.Bool("direct", false), zap.Int("value", b.A().Value()))
	return nil
}

// outputFor maps the configured target onto the command's streams.
func outputFor(cmd *cobra.Command, c *config.Config) io.Writer {
	if c != nil && c.Output.Target == config.OutputStderr {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}
