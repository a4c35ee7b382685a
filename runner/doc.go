// Package runner drives a complete solve session: it runs all four
// iteration methods from one starting point, prints a console summary per
// method in reference order and, when enabled, exports the iteration logs
// (CSV) and a convergence chart.
//
// The methods run concurrently; each owns its own state and log, and the
// output order does not depend on scheduling.
//
//	cfg := runner.DefaultConfig()
//	cfg.SaveCSV = true
//	err := runner.Run(cfg, lggr, os.Stdout)
package runner
