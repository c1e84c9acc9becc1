// Package reorder computes new link orderings from a drag source and drop
// target index.
package reorder

import (
	"fmt"

	"github.com/mesh-intelligence/dailies/pkg/types"
)

// Move returns a copy of c with the element at from removed and then
// inserted at to in the shortened sequence. Moving forward therefore lands
// the element at index to of the result, with the elements in between
// shifted one place toward from. The input is never modified.
//
// Out-of-range indices are rejected with ErrIndexOutOfRange rather than
// clamped.
func Move(c types.Collection, from, to int) (types.Collection, error) {
	n := len(c)
	if from < 0 || from >= n {
		return nil, fmt.Errorf("from %d (valid range 0-%d): %w", from, n-1, types.ErrIndexOutOfRange)
	}
	if to < 0 || to >= n {
		return nil, fmt.Errorf("to %d (valid range 0-%d): %w", to, n-1, types.ErrIndexOutOfRange)
	}

	out := make(types.Collection, 0, n)
	if from == to {
		return append(out, c...), nil
	}

	moved := c[from]
	rest := make(types.Collection, 0, n-1)
	rest = append(rest, c[:from]...)
	rest = append(rest, c[from+1:]...)

	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	return out, nil
}
