// SPDX-License-Identifier: MIT
// Package iterate: sentinel errors and wrapping helper.
// Messages are prefixed with "iterate: ...". Errors from linalg are wrapped
// with the method and iteration so errors.Is still matches the sentinel.

package iterate

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is returned by Solve for a Method outside Methods().
var ErrUnknownMethod = errors.New("iterate: unknown method")

// stepErrorf tags err with the method and 0-based iteration index.
// err must be non-nil.
func stepErrorf(m Method, iter int, err error) error {
	return fmt.Errorf("%s: iter %d: %w", m, iter, err)
}
