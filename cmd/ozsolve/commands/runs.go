// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ozsolver/store"
)

var errNoDatabase = errors.New("no database: pass --db or set output.database")

func newRunsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored runs",
	}
	cmd.AddCommand(newRunsListCommand())
	cmd.AddCommand(newRunsShowCommand())

	return cmd
}

func openStore() (*store.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	path := databasePath(cfg)
	if path == "" {
		return nil, errNoDatabase
	}

	return store.Open(path)
}

func newRunsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.ListRuns(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tSTATUS\tITER\tRESIDUAL\tN\tDENSITY\tT\tEQUATION")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.3e\t%d\t%g\t%g\t%s\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Status, r.Iterations, r.Residual,
					r.Points, r.Density, r.Temperature, r.IntegralEquation)
			}

			return tw.Flush()
		},
	}
}

func newRunsShowCommand() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored run's profile as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			run, err := db.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if csvPath != "" {
				return writeCSV(csvPath, run.Profile)
			}

			return store.WriteCSV(cmd.OutOrStdout(), run.Profile)
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "write to this file instead of stdout")

	return cmd
}
