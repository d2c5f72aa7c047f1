package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cloud-ru/npv-dashboard/internal/calculations"
	"github.com/cloud-ru/npv-dashboard/internal/config"
	"github.com/cloud-ru/npv-dashboard/internal/validators"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "npvdash",
	Short: "NPV / IRR investment dashboard",
	Long: `npvdash evaluates a project's cash-flow schedule: net present value,
internal rate of return and a per-period present/future value ledger.

It serves an HTML dashboard with a JSON API, or prints the results to the
terminal. Configuration comes from the environment or a .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err = newLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(serveCmd, analyzeCmd, narrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// scenario validates the configured inputs and builds the schedule.
func scenario(c *config.Config) (calculations.Schedule, error) {
	if err := validators.CheckScenario(c, c.InitialInvestment, c.DiscountRate, c.CashFlows); err != nil {
		return calculations.Schedule{}, fmt.Errorf("invalid scenario: %w", err)
	}
	return calculations.NewSchedule(c.InitialInvestment, c.CashFlows)
}
