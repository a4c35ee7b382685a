package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/nlsolve/iterate"
)

// WriteSummary prints the console block for one finished run:
//
//	=== Newton–Raphson ===
//	Final result   : x = 2.000000000000, y = 3.000000000000
//	Iterations     : 4
//	Last error     : 5.868e-07
//
// followed by a blank line.
func WriteSummary(w io.Writer, res iterate.Result) error {
	if len(res.Log) == 0 {
		return fmt.Errorf("WriteSummary: %s: %w", res.Method, ErrEmptyLog)
	}
	_, err := fmt.Fprintf(w,
		"=== %s ===\nFinal result   : x = %.12f, y = %.12f\nIterations     : %d\nLast error     : %.3e\n\n",
		res.Method.Title(), res.X, res.Y, res.Iterations, res.FinalError())

	return err
}
