// Package sieve precomputes prime tables for every integer in [0, limit].
//
// Overview:
//
//   - Sieve is the sieve of Eratosthenes. It stores one bit per number and
//     answers "is n prime?" in O(1).
//   - EulerSieve is the linear sieve of Euler. It stores the smallest prime
//     factor of every number up to the limit together with the ordered list of
//     primes, which makes factorization of any |n| <= limit a matter of
//     repeated table lookups.
//   - IsPrime is a plain trial-division check restricted to 8- and 16-bit
//     integer types, for callers that do not want a table.
//
// Both sieves are generic over every Go integer type. Bounds and loop counters
// are carried in uint64 internally, so the algorithm never overflows the
// caller's type even when the limit equals its maximum value.
//
// Performance and complexity:
//
//   - Sieve:      time O(n log log n), space n+1 bits.
//   - EulerSieve: time O(n), space n+1 slots of T plus π(n) primes.
//   - Queries:    O(1); Factorize is O(number of prime factors).
//
// Error handling (sentinel errors):
//
//   - ErrOutOfRange:         a query argument is larger than the limit.
//   - ErrNoPrimeFactor:      MinPrimeFactor or Factorize on 0, 1 or -1.
//   - numeric.ErrConversion: the limit cannot be used as an index (e.g. negative).
//   - numeric.ErrOverflow:   the limit is too wide for the widened multiplication
//     (EulerSieve: bit width of the limit, doubled, exceeds 64). This is
//     detected before any table is allocated.
//
// A sieve is built once for a fixed limit and cannot be extended. Once
// constructed, neither type mutates its state, so a single instance may be
// shared by concurrent readers without synchronization.
//
// Example usage:
//
//	es, err := sieve.NewEulerSieve(100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, _ := es.MinPrimeFactor(91) // 7
package sieve
