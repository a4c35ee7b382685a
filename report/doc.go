// Package report turns iteration logs produced by package iterate into
// human- and machine-readable artifacts.
//
//	WriteCSV / SaveCSV   — per-iteration log as CSV
//	                       (iter,x_n,y_n,x_next,y_next,error_norm)
//	WriteSummary         — console block: final (x,y), iteration count, final error
//	SavePlot             — convergence chart (error norm vs. iteration, log scale)
//
// Nothing here runs inside an iteration loop; every function consumes a
// finished iterate.Result.
package report
