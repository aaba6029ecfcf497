// SPDX-License-Identifier: MIT

package sieve

// Small is the set of integer types narrow enough for IsPrime.
type Small interface {
	~int8 | ~int16 | ~uint8 | ~uint16
}

// IsPrime tests n by trial division, without any precomputed table.
//
// It is limited to 8- and 16-bit types because the cost grows as O(√n);
// use Sieve or EulerSieve for wider ranges or repeated queries.
func IsPrime[T Small](n T) bool {
	if n < 2 {
		return false
	}
	v := int32(n)
	for d := int32(2); d*d <= v; d++ {
		if v%d == 0 {
			return false
		}
	}

	return true
}
