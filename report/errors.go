package report

import "errors"

var (
	// ErrEmptyLog is returned when an export receives a result with no records.
	ErrEmptyLog = errors.New("report: empty iteration log")

	// ErrNoResults is returned by SavePlot when called without results.
	ErrNoResults = errors.New("report: no results to plot")
)
