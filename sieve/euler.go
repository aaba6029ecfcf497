// SPDX-License-Identifier: MIT

package sieve

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/numtheory/numeric"
)

// EulerSieve is the linear sieve of Euler over [0, limit].
//
// minFactor[i] holds the smallest prime factor of i for i >= 2; slots 0 and 1
// are 0. primes lists every prime <= limit in ascending order, and
// minFactor[p] == p exactly for the elements of primes.
type EulerSieve[T constraints.Integer] struct {
	limit     T
	minFactor []T
	primes    []T
}

// NewEulerSieve builds the smallest-prime-factor table in linear time.
//
// Validation happens before any allocation, in this order:
//  1. limit must be a valid index (numeric.ErrConversion).
//  2. limit squared must fit the uint64 accumulator (numeric.ErrOverflow).
//
// Each composite c is written exactly once, by its smallest prime factor p,
// when the outer loop reaches c/p: the inner loop stops as soon as a prime
// exceeds the smallest factor of the current number.
//
// Complexity: O(n) time, O(n) memory.
func NewEulerSieve[T constraints.Integer](limit T) (*EulerSieve[T], error) {
	size, err := tableSize(limit)
	if err != nil {
		return nil, err
	}
	n := uint64(size - 1)
	if err = numeric.CheckSquare(n); err != nil {
		return nil, fmt.Errorf("sieve: limit %d, use a wider integer type: %w", limit, err)
	}

	es := &EulerSieve[T]{
		limit:     limit,
		minFactor: make([]T, size),
	}
	for num := uint64(2); num <= n; num++ {
		if es.minFactor[num] == 0 {
			es.primes = append(es.primes, T(num))
			es.minFactor[num] = T(num)
		}
		for _, p := range es.primes {
			if p > es.minFactor[num] {
				break
			}
			x := uint64(p) * num
			if x > n {
				break
			}
			es.minFactor[x] = p
		}
	}

	return es, nil
}

// Limit returns the largest number (inclusive) the sieve covers.
func (es *EulerSieve[T]) Limit() T { return es.limit }

// Count returns the number of primes <= Limit().
func (es *EulerSieve[T]) Count() int { return len(es.primes) }

// Primes returns a copy of the ascending list of all primes <= Limit().
func (es *EulerSieve[T]) Primes() []T {
	out := make([]T, len(es.primes))
	copy(out, es.primes)

	return out
}

// MinPrimeFactor returns the smallest prime dividing |n|.
//
// Errors:
//   - ErrNoPrimeFactor if |n| <= 1.
//   - ErrOutOfRange if |n| > Limit().
func (es *EulerSieve[T]) MinPrimeFactor(n T) (T, error) {
	abs, err := es.index(n)
	if err != nil {
		return 0, err
	}

	return es.minFactor[abs], nil
}

// IsPrime reports whether n is prime, using the factor table.
// Like Sieve.IsPrime, negatives (and 0, 1) are not prime, and n > Limit()
// yields ErrOutOfRange.
func (es *EulerSieve[T]) IsPrime(n T) (bool, error) {
	if n < 0 {
		return false, nil
	}
	if n > es.limit {
		return false, fmt.Errorf("%w: %d > %d", ErrOutOfRange, n, es.limit)
	}
	if n < 2 {
		return false, nil
	}

	return es.minFactor[uint64(n)] == n, nil
}

// Factorize returns the prime factors of |n| with multiplicity, in
// non-decreasing order; their product is |n|. For example 360 yields
// [2 2 2 3 3 5]. Errors follow MinPrimeFactor.
//
// Complexity: O(Ω(n)), the number of prime factors counted with multiplicity.
func (es *EulerSieve[T]) Factorize(n T) ([]T, error) {
	abs, err := es.index(n)
	if err != nil {
		return nil, err
	}

	var factors []T
	for abs > 1 {
		p := es.minFactor[abs]
		factors = append(factors, p)
		abs /= uint64(p)
	}

	return factors, nil
}

// index normalizes n to |n| and checks that a prime factor exists in the table.
func (es *EulerSieve[T]) index(n T) (uint64, error) {
	abs := numeric.UnsignedAbs(n)
	if abs <= 1 {
		return 0, fmt.Errorf("%w: %d", ErrNoPrimeFactor, n)
	}
	if abs > numeric.UnsignedAbs(es.limit) {
		return 0, fmt.Errorf("%w: |%d| > %d", ErrOutOfRange, n, es.limit)
	}

	return abs, nil
}
