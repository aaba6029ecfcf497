// SPDX-License-Identifier: MIT

package sieve

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/numtheory/numeric"
)

// Sieve is the sieve of Eratosthenes over [0, limit].
// Bit i of the table is set iff i is prime.
type Sieve[T constraints.Integer] struct {
	limit   T
	isPrime *bitset.BitSet
}

// NewSieve builds the primality table for every integer in [0, limit].
//
// Errors:
//   - numeric.ErrConversion if limit is negative or not representable as uint.
//   - numeric.ErrOverflow if limit+1 entries cannot be addressed.
//
// Complexity: O(n log log n) time, n+1 bits of memory.
func NewSieve[T constraints.Integer](limit T) (*Sieve[T], error) {
	size, err := tableSize(limit)
	if err != nil {
		return nil, err
	}
	n := uint64(size - 1)

	flags := bitset.New(size)
	if size > 2 {
		flags.FlipRange(2, size) // 0 and 1 stay clear
	}

	// i <= n/i is i*i <= n without the multiplication.
	for i := uint64(2); i <= n/i; i++ {
		if !flags.Test(uint(i)) {
			continue
		}
		for j := i * i; j <= n; j += i {
			flags.Clear(uint(j))
			if j > n-i {
				break // j+i would wrap past the limit
			}
		}
	}

	return &Sieve[T]{limit: limit, isPrime: flags}, nil
}

// Limit returns the largest number (inclusive) the sieve covers.
func (s *Sieve[T]) Limit() T { return s.limit }

// IsPrime reports whether n is prime.
// Negative numbers are never prime; n > Limit() yields ErrOutOfRange.
func (s *Sieve[T]) IsPrime(n T) (bool, error) {
	if n < 0 {
		return false, nil
	}
	if n > s.limit {
		return false, fmt.Errorf("%w: %d > %d", ErrOutOfRange, n, s.limit)
	}

	return s.isPrime.Test(uint(n)), nil
}

// Count returns the number of primes in [0, Limit()].
func (s *Sieve[T]) Count() int {
	return int(s.isPrime.Count())
}

// Primes returns all primes in [0, Limit()] in ascending order.
// The slice is freshly allocated on every call.
func (s *Sieve[T]) Primes() []T {
	out := make([]T, 0, s.Count())
	for i, ok := s.isPrime.NextSet(0); ok; i, ok = s.isPrime.NextSet(i + 1) {
		out = append(out, T(i))
	}

	return out
}

// tableSize converts limit into the length of a table indexed by [0, limit].
func tableSize[T constraints.Integer](limit T) (uint, error) {
	n, err := numeric.Cast[uint](limit)
	if err != nil {
		return 0, fmt.Errorf("sieve: limit: %w", err)
	}
	if n == math.MaxUint {
		return 0, fmt.Errorf("sieve: table for limit %d: %w", limit, numeric.ErrOverflow)
	}

	return n + 1, nil
}
