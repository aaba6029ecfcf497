// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/bits"
)

// accumulatorBits is the width of the widened multiplication domain.
const accumulatorBits = 64

// BitWidth returns the number of bits required to represent v (0 for v == 0).
func BitWidth(v uint64) int {
	return bits.Len64(v)
}

// CheckSquare reports ErrOverflow when v*v might not fit in a uint64,
// i.e. when the bit width of v, doubled, exceeds the accumulator width.
//
// The check is conservative: it depends on the width of v only, so every
// product a*b with a, b <= v is safe once it passes.
func CheckSquare(v uint64) error {
	if w := BitWidth(v); 2*w > accumulatorBits {
		return fmt.Errorf("%w: %d needs %d bits", ErrOverflow, v, w)
	}

	return nil
}

// Sum adds terms in uint64 and reports false if the total wrapped around.
func Sum(terms ...uint64) (uint64, bool) {
	var (
		total uint64
		carry uint64
	)
	for _, t := range terms {
		total, carry = bits.Add64(total, t, 0)
		if carry != 0 {
			return 0, false
		}
	}

	return total, true
}
