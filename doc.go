// Package numtheory is a small toolbox of number-theory primitives over
// bounded integer ranges, generic over every Go integer type.
//
// What is inside:
//
//	• Primality tables: sieve of Eratosthenes, one bit per number
//	• Smallest prime factors: Euler's linear sieve, plus the ordered prime list
//	  and table-driven factorization
//	• Coprime pairs: every (x, y) with limit ≥ x ≥ y ≥ 0 and gcd(x, y) = 1
//	• Trial division for 8- and 16-bit numbers
//
// Everything is organized under three subpackages:
//
//	sieve/   — Sieve, EulerSieve and IsPrime
//	coprime/ — Pairs and the Pair type
//	numeric/ — checked integer conversion, unsigned absolute value and the
//	           64-bit overflow guard shared by the other two
//
// Each table is built once for a fixed limit and is read-only afterwards, so
// a sieve can be shared freely between goroutines once constructed. Invalid
// input is reported with sentinel errors, never with panics.
//
//	go get github.com/katalvlaran/numtheory
package numtheory
