// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ozsolver/config"
)

// Global flags.
var (
	configPath string
	dbPath     string
)

// Execute runs the root command.
func Execute(ctx context.Context, version, commit string) error {
	return newRootCommand(version, commit).ExecuteContext(ctx)
}

func newRootCommand(version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:   "ozsolve",
		Short: "Ornstein–Zernike integral equation solver",
		Long: `ozsolve computes the pair correlation functions c(r), t(r), h(r) and the
radial distribution function g(r) of a simple liquid by damped Picard
iteration of the Ornstein–Zernike equation with a closure relation.

Runs are described in YAML (see "ozsolve validate --print"), profiles are
exported as CSV and solved runs can be kept in a SQLite database.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "run description (YAML); built-in argon scenario when empty")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database of solved runs")

	root.AddCommand(newRunCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newRunsCommand())

	return root
}

// loadConfig reads --config, or returns the default scenario.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}

	return config.Load(configPath)
}

// databasePath prefers --db over the configured output database.
func databasePath(cfg config.Config) string {
	if dbPath != "" {
		return dbPath
	}

	return cfg.Output.Database
}
