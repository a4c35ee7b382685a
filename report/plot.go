package report

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nlsolve/iterate"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot dimensions.
const (
	PlotWidth  = 8 * vg.Inch
	PlotHeight = 5 * vg.Inch
)

// minPlotErr replaces zero error norms, which a log axis cannot place.
const minPlotErr = 1e-17

// NewConvergencePlot builds a chart of error norm (log scale) against
// iteration index, one line per result.
func NewConvergencePlot(results ...iterate.Result) (*plot.Plot, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	p := plot.New()
	p.Title.Text = "Convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "error norm"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	for i, res := range results {
		if len(res.Log) == 0 {
			return nil, fmt.Errorf("NewConvergencePlot: %s: %w", res.Method, ErrEmptyLog)
		}
		line, err := plotter.NewLine(errorSeries(res.Log))
		if err != nil {
			return nil, fmt.Errorf("NewConvergencePlot: %s: %w", res.Method, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(res.Method.Title(), line)
	}
	p.Legend.Top = true
	if p.Y.Min == p.Y.Max {
		// a flat series would otherwise be padded to a non-positive range
		p.Y.Min /= 10
		p.Y.Max *= 10
	}

	return p, nil
}

// SavePlot renders NewConvergencePlot(results...) to path; the format
// follows the extension (.png, .svg, .pdf, ...).
func SavePlot(path string, results ...iterate.Result) error {
	p, err := NewConvergencePlot(results...)
	if err != nil {
		return err
	}
	if err = p.Save(PlotWidth, PlotHeight, path); err != nil {
		return fmt.Errorf("SavePlot: %w", err)
	}

	return nil
}

// errorSeries maps records to (iter, err) points, clamping values a log
// axis cannot show.
func errorSeries(log []iterate.Record) plotter.XYs {
	pts := make(plotter.XYs, len(log))
	for i, rec := range log {
		e := rec.Err
		switch {
		case math.IsNaN(e), math.IsInf(e, 1):
			e = math.MaxFloat64
		case e < minPlotErr:
			e = minPlotErr
		}
		pts[i].X = float64(rec.Iter)
		pts[i].Y = e
	}

	return pts
}
