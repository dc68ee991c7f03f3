// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ozsolver/config"
	"github.com/katalvlaran/ozsolver/observe"
	"github.com/katalvlaran/ozsolver/solver"
	"github.com/katalvlaran/ozsolver/store"
)

type runFlags struct {
	points        int
	radius        float64
	density       float64
	temperature   float64
	tolerance     float64
	maxIterations int
	damping       float64
	metric        string
	equation      string
	csvPath       string
	metricsPath   string
	logEvery      int
}

func newRunCommand() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve the OZ equation for one state point",
		Long: `Solve the Ornstein–Zernike equation for the configured state point.

Flags override the values read from --config. The finalised profile is
written as CSV (r,c,t,h,g) and, when a database is given, stored together
with its parameters under a fresh run id.`,
		Example: `  # Built-in liquid argon scenario
  ozsolve run --csv argon.csv

  # A denser state from a run file, stored for later
  ozsolve run -c argon.yaml --density 0.022 --db runs.db

  # Iteration trace
  LOG_LEVEL=debug ozsolve run --log-every 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)

			return runSolve(cmd, cfg, f)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.points, "points", 0, "number of grid points")
	fl.Float64Var(&f.radius, "radius", 0, "grid radius")
	fl.Float64Var(&f.density, "density", 0, "number density")
	fl.Float64Var(&f.temperature, "temperature", 0, "temperature")
	fl.Float64Var(&f.tolerance, "tolerance", 0, "convergence tolerance")
	fl.IntVar(&f.maxIterations, "max-iterations", 0, "iteration cap")
	fl.Float64Var(&f.damping, "damping", 0, "mixing fraction of the new candidate, in (0,1]")
	fl.StringVar(&f.metric, "metric", "", "residual metric: sum, l2 or max")
	fl.StringVar(&f.equation, "equation", "", "integral equation: oz or legacy-oz")
	fl.StringVar(&f.csvPath, "csv", "", "write the profile to this CSV file")
	fl.StringVar(&f.metricsPath, "metrics-file", "", "write Prometheus metrics in text format to this file")
	fl.IntVar(&f.logEvery, "log-every", 100, "log every n-th iteration at debug level")

	return cmd
}

// apply copies every flag the user set onto cfg.
func (f runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("points") {
		cfg.Grid.Points = f.points
	}
	if set("radius") {
		cfg.Grid.Radius = f.radius
	}
	if set("density") {
		cfg.State.Density = f.density
	}
	if set("temperature") {
		cfg.State.Temperature = f.temperature
	}
	if set("tolerance") {
		cfg.Solver.Tolerance = f.tolerance
	}
	if set("max-iterations") {
		cfg.Solver.MaxIterations = f.maxIterations
	}
	if set("damping") {
		cfg.Solver.Damping = f.damping
	}
	if set("metric") {
		cfg.Solver.Metric = f.metric
	}
	if set("equation") {
		cfg.IntegralEquation = f.equation
	}
	if set("csv") {
		cfg.Output.CSV = f.csvPath
	}
}

type outcome struct {
	res solver.Result
	err error
}

func runSolve(cmd *cobra.Command, cfg config.Config, f runFlags) error {
	ctx := cmd.Context()
	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()

	reg := prometheus.NewRegistry()
	metrics, err := observe.NewMetrics(reg, "ozsolve")
	if err != nil {
		return err
	}

	s, err := config.Assemble(cfg,
		solver.WithObserver(observe.Logger(logger, f.logEvery)),
		solver.WithObserver(metrics.Observer()),
	)
	if err != nil {
		return err
	}

	logger.Info().
		Int("points", cfg.Grid.Points).
		Float64("radius", cfg.Grid.Radius).
		Float64("density", cfg.State.Density).
		Float64("temperature", cfg.State.Temperature).
		Str("closure", cfg.Closure).
		Str("equation", cfg.IntegralEquation).
		Msg("solving")

	start := time.Now()
	done := make(chan outcome, 1)
	go func() {
		res, err := s.Run(make([]float64, cfg.Grid.Points))
		done <- outcome{res, err}
	}()

	var out outcome
	select {
	case <-ctx.Done():
		return fmt.Errorf("solve interrupted: %w", ctx.Err())
	case out = <-done:
	}
	metrics.RecordResult(out.res, out.err)
	if f.metricsPath != "" {
		if err := prometheus.WriteToTextfile(f.metricsPath, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	if out.err != nil {
		return out.err
	}

	logger.Info().
		Str("status", out.res.Status.String()).
		Int("iterations", out.res.Iterations).
		Float64("residual", out.res.Residual).
		Dur("elapsed", time.Since(start)).
		Msg("solve finished")

	run := store.NewRun(cfg.Params(), out.res, s.Grid().R(), s.State())
	run.ID = runID

	if cfg.Output.CSV != "" {
		if err := writeCSV(cfg.Output.CSV, run.Profile); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.Output.CSV).Msg("profile written")
	}

	if path := databasePath(cfg); path != "" {
		if err := saveRun(ctx, path, run); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("run stored")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%.3e\n", run.ID, run.Status, run.Iterations, run.Residual)

	return nil
}

func writeCSV(path string, p store.Profile) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := store.WriteCSV(fh, p); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}

func saveRun(ctx context.Context, path string, run store.Run) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.SaveRun(ctx, run)
}
