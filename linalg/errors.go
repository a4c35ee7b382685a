// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Every message is prefixed with "linalg: ..." so it greps cleanly in logs.
// Return the sentinel directly; outer layers wrap with fmt.Errorf("ctx: %w")
// and callers match with errors.Is.

package linalg

import "errors"

// ErrSingular is returned when |det| < SingularThreshold and the 2×2
// system has no numerically unique solution.
var ErrSingular = errors.New("linalg: singular matrix")
