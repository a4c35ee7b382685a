// Command nlsolve solves x² + xy = 10, y + 3xy² = 57 from (1.5, 3.5) with
// Jacobi and Seidel fixed-point iteration, Newton–Raphson and the secant
// method, and prints one summary per method.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/nlsolve/internal/logger"
	"github.com/katalvlaran/nlsolve/runner"
)

// saveCSV switches the per-iteration CSV export on.
const saveCSV = false

func main() {
	lggr, err := logger.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "nlsolve: logger:", err)
		os.Exit(1)
	}

	cfg := runner.DefaultConfig()
	cfg.SaveCSV = saveCSV

	err = runner.Run(cfg, lggr.Named("nlsolve"), os.Stdout)
	_ = lggr.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "nlsolve:", err)
		os.Exit(1)
	}
}
