// SPDX-License-Identifier: MIT
package sieve_test

// trialDivision is the brute-force oracle the sieves are checked against.
func trialDivision(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}
