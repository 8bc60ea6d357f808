// Package cli provides the realmsim command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/realm-sim/internal/config"
)

var (
	cfgPath string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "realmsim",
		Short: "Turn-based region and nation economic simulation",
		Long: `realmsim runs a turn-based economic simulation across regions and
nations: resource production, consumption, trade allocation, and
economic-cycle feedback, with an observer API for external tooling.`,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config (built-in defaults when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(validateCmd)
}

func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig loads the configured file or falls back to built-in defaults.
func loadConfig() (*config.File, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	f, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", cfgPath, err)
	}
	return f, nil
}
