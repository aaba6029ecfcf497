// SPDX-License-Identifier: MIT

package sieve

import "errors"

// Sentinel errors returned by the sieves. Constructors also surface
// numeric.ErrConversion and numeric.ErrOverflow (wrapped) for unusable bounds.
var (
	// ErrOutOfRange indicates that a queried number exceeds the sieve limit.
	ErrOutOfRange = errors.New("sieve: number exceeds the limit of the sieve")

	// ErrNoPrimeFactor indicates a factor lookup for 0, 1 or -1, which have
	// no prime factor.
	ErrNoPrimeFactor = errors.New("sieve: minimum prime factor does not exist")
)
