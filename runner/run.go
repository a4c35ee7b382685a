package runner

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/katalvlaran/nlsolve/internal/logger"
	"github.com/katalvlaran/nlsolve/iterate"
	"github.com/katalvlaran/nlsolve/report"
	"golang.org/x/sync/errgroup"
)

// Run executes every method in iterate.Methods() with cfg, writes one
// summary block per successful method to out and performs the enabled
// exports.
//
// A method that fails (singular Jacobian) is logged and skipped in the
// summary and exports; its error is returned, joined with any others,
// after everything else has been reported.
func Run(cfg Config, lggr logger.Logger, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	lggr.Debugw("session configured",
		"x0", cfg.X0, "y0", cfg.Y0, "eps", cfg.Eps, "step", cfg.Step,
		"saveCSV", cfg.SaveCSV, "savePlot", cfg.SavePlot, "outDir", cfg.OutDir)

	methods := iterate.Methods()
	results := make([]iterate.Result, len(methods))
	errs := make([]error, len(methods))

	var g errgroup.Group
	for i, m := range methods {
		i, m := i, m
		g.Go(func() error {
			lggr.Infow("run started", "method", m.String(), "maxIter", cfg.maxIter(m))
			results[i], errs[i] = iterate.Solve(m, cfg.X0, cfg.Y0, cfg.options(m)...)

			return errs[i]
		})
	}
	var runErr error
	if err := g.Wait(); err != nil {
		runErr = errors.Join(errs...)
	}

	done := make([]iterate.Result, 0, len(methods))
	for i, m := range methods {
		if errs[i] != nil {
			lggr.Errorw("run failed", "method", m.String(), "err", errs[i])
			continue
		}
		res := results[i]
		if err := report.WriteSummary(out, res); err != nil {
			return fmt.Errorf("Run: %w", err)
		}
		lggr.Infow("run finished",
			"method", m.String(), "x", res.X, "y", res.Y,
			"iterations", res.Iterations, "error", res.FinalError(), "converged", res.Converged())
		if !res.Converged() {
			lggr.Warnw("iteration cap reached without meeting tolerance",
				"method", m.String(), "maxIter", res.MaxIter, "eps", res.Eps, "error", res.FinalError())
		}
		done = append(done, res)
	}

	exportErr := export(cfg, lggr, out, done)

	return errors.Join(runErr, exportErr)
}

// export writes the CSV logs and the convergence chart for finished runs.
func export(cfg Config, lggr logger.Logger, out io.Writer, done []iterate.Result) error {
	if cfg.SaveCSV && len(done) > 0 {
		for _, res := range done {
			path := filepath.Join(cfg.OutDir, report.CSVFileName(res.Method))
			if err := report.SaveCSV(path, res.Log); err != nil {
				lggr.Errorw("csv export failed", "method", res.Method.String(), "path", path, "err", err)

				return fmt.Errorf("Run: export %s: %w", res.Method, err)
			}
			lggr.Infow("iteration log saved", "method", res.Method.String(), "path", path, "rows", len(res.Log))
		}
		if _, err := fmt.Fprintf(out, "Iteration logs saved as CSV in %s.\n", cfg.OutDir); err != nil {
			return fmt.Errorf("Run: %w", err)
		}
	}
	if cfg.SavePlot && len(done) > 0 {
		path := filepath.Join(cfg.OutDir, cfg.PlotFile)
		if err := report.SavePlot(path, done...); err != nil {
			lggr.Errorw("plot export failed", "path", path, "err", err)

			return fmt.Errorf("Run: plot: %w", err)
		}
		lggr.Infow("convergence plot saved", "path", path)
	}

	return nil
}
