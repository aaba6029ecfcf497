// Package numeric provides the small integer helpers shared by the sieve and
// coprime packages.
//
// Overview:
//
//   - Cast converts between integer types and fails when the value does not
//     fit the target type exactly (sign loss or truncation).
//   - UnsignedAbs returns the magnitude of any integer in the 64-bit widened
//     domain; it is exact for the most negative value of every signed width.
//   - BitWidth and CheckSquare implement the widened-accumulator guard: a bound
//     that needs more than 32 bits cannot be squared inside a uint64.
//   - Sum adds uint64 terms and reports wraparound instead of hiding it.
//
// Error handling (sentinel errors):
//
//   - ErrConversion: the value is not representable in the target type.
//   - ErrOverflow:   the widened multiplication could wrap around.
//
// All helpers are pure and allocation-free.
package numeric
