// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Cast converts v to the integer type To.
//
// The conversion succeeds only when the result compares equal to v after a
// round trip and keeps its sign; otherwise ErrConversion is returned, wrapped
// with the offending value and the target type.
//
// Complexity: O(1).
func Cast[To, From constraints.Integer](v From) (To, error) {
	t := To(v)
	if From(t) != v || (v < 0) != (t < 0) {
		return 0, fmt.Errorf("%w: %d as %T", ErrConversion, v, t)
	}

	return t, nil
}

// UnsignedAbs returns |v| as a uint64.
//
// For signed types the most negative value is handled without overflow:
// ^v equals -v-1, which is always representable.
func UnsignedAbs[T constraints.Integer](v T) uint64 {
	if v < 0 {
		return uint64(^v) + 1
	}

	return uint64(v)
}
