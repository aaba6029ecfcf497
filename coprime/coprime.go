// SPDX-License-Identifier: MIT

package coprime

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/numtheory/numeric"
)

// Pair is a coprime pair with X >= Y >= 0.
type Pair[T constraints.Integer] struct {
	X, Y T
}

// Pairs generates all coprime pairs (x, y) with limit >= x >= y >= 0.
//
// A limit <= 0 yields nil, before the (1, 0) and (1, 1) pairs are considered.
func Pairs[T constraints.Integer](limit T) []Pair[T] {
	if limit <= 0 {
		return nil
	}
	n := uint64(limit)

	var pairs []Pair[T]
	// add appends (x, y) when x is within the limit; the caller keeps x >= y.
	// A first component that wrapped in uint64 (ok == false) is past any limit.
	add := func(x, y uint64, ok bool) {
		if ok && x <= n {
			pairs = append(pairs, Pair[T]{X: T(x), Y: T(y)})
		}
	}

	add(2, 1, true)
	add(3, 1, true)
	for visited := 0; visited < len(pairs); visited++ {
		x, y := uint64(pairs[visited].X), uint64(pairs[visited].Y)

		v, ok := numeric.Sum(x, x-y) // 2x-y
		add(v, x, ok)
		v, ok = numeric.Sum(x, x, y) // 2x+y
		add(v, x, ok)
		v, ok = numeric.Sum(x, y, y) // x+2y
		add(v, y, ok)
	}
	add(1, 0, true)
	add(1, 1, true)

	return pairs
}
