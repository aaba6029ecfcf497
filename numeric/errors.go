// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrConversion indicates that a value cannot be represented exactly in
	// the requested integer type.
	ErrConversion = errors.New("numeric: value not representable in target type")

	// ErrOverflow indicates that squaring a value would overflow the 64-bit
	// widened accumulator.
	ErrOverflow = errors.New("numeric: widened multiplication would overflow")
)
