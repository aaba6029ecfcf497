// SPDX-License-Identifier: MIT
// Package sieve_test contains unit tests for the linear (Euler) sieve.
package sieve_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/numtheory/numeric"
	"github.com/katalvlaran/numtheory/sieve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEulerSieve_Ten(t *testing.T) {
	t.Parallel()

	es, err := sieve.NewEulerSieve(10)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 7}, es.Primes())
	assert.Equal(t, 10, es.Limit())

	p, err := es.MinPrimeFactor(9)
	require.NoError(t, err)
	assert.Equal(t, 3, p)

	_, err = es.MinPrimeFactor(1)
	require.True(t, errors.Is(err, sieve.ErrNoPrimeFactor), "got %v", err)
}

// TestEulerSieve_MinPrimeFactorErrors covers the domain and range errors, including negatives.
func TestEulerSieve_MinPrimeFactorErrors(t *testing.T) {
	t.Parallel()

	es, err := sieve.NewEulerSieve(int16(100))
	require.NoError(t, err)

	tests := []struct {
		name    string
		in      int16
		want    int16
		wantErr error
	}{
		{"zero", 0, 0, sieve.ErrNoPrimeFactor},
		{"one", 1, 0, sieve.ErrNoPrimeFactor},
		{"minus one", -1, 0, sieve.ErrNoPrimeFactor},
		{"above limit", 101, 0, sieve.ErrOutOfRange},
		{"below minus limit", -101, 0, sieve.ErrOutOfRange},
		{"most negative", math.MinInt16, 0, sieve.ErrOutOfRange},
		{"prime", 97, 97, nil},
		{"composite", 91, 7, nil},
		{"negative composite", -91, 7, nil},
		{"limit", 100, 2, nil},
		{"minus limit", -100, 2, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := es.MinPrimeFactor(tc.in)
			if tc.wantErr != nil {
				require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestEulerSieve_Properties checks the factor table and prime list against brute force
// and against the Eratosthenes sieve.
func TestEulerSieve_Properties(t *testing.T) {
	t.Parallel()

	for _, limit := range []int{2, 3, 10, 30, 100, 1000, 5000} {
		es, err := sieve.NewEulerSieve(limit)
		require.NoError(t, err)
		s, err := sieve.NewSieve(limit)
		require.NoError(t, err)

		assert.Equalf(t, s.Primes(), es.Primes(), "limit=%d", limit)
		assert.Equal(t, s.Count(), es.Count())

		for n := 2; n <= limit; n++ {
			p, err := es.MinPrimeFactor(n)
			require.NoError(t, err)
			require.Zerof(t, n%p, "mpf(%d)=%d does not divide", n, p)
			for d := 2; d < p; d++ {
				require.NotZerof(t, n%d, "mpf(%d)=%d but %d divides", n, p, d)
			}

			ok, err := es.IsPrime(n)
			require.NoError(t, err)
			require.Equal(t, trialDivision(n), ok)
		}
	}
}

// TestEulerSieve_Overflow verifies wide limits are rejected before any work.
func TestEulerSieve_Overflow(t *testing.T) {
	t.Parallel()

	// 33 bits doubled exceeds the 64-bit accumulator.
	_, err := sieve.NewEulerSieve(int64(1) << 32)
	require.ErrorIs(t, err, numeric.ErrOverflow)

	_, err = sieve.NewEulerSieve(int64(math.MaxInt64))
	require.ErrorIs(t, err, numeric.ErrOverflow)

	_, err = sieve.NewEulerSieve(uint64(math.MaxUint64))
	require.ErrorIs(t, err, numeric.ErrOverflow)

	_, err = sieve.NewEulerSieve(-5)
	require.ErrorIs(t, err, numeric.ErrConversion)
}

// TestEulerSieve_TypeMaximum makes sure a limit equal to the type maximum terminates.
func TestEulerSieve_TypeMaximum(t *testing.T) {
	t.Parallel()

	es, err := sieve.NewEulerSieve(uint8(math.MaxUint8))
	require.NoError(t, err)
	assert.Equal(t, 54, es.Count())

	p, err := es.MinPrimeFactor(255)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), p)

	i8, err := sieve.NewEulerSieve(int8(math.MaxInt8))
	require.NoError(t, err)
	p8, err := i8.MinPrimeFactor(-125)
	require.NoError(t, err)
	assert.Equal(t, int8(5), p8)
}

func TestEulerSieve_Factorize(t *testing.T) {
	t.Parallel()

	es, err := sieve.NewEulerSieve(1000)
	require.NoError(t, err)

	f, err := es.Factorize(360)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2, 3, 3, 5}, f)

	f, err = es.Factorize(-997)
	require.NoError(t, err)
	assert.Equal(t, []int{997}, f)

	_, err = es.Factorize(1)
	require.ErrorIs(t, err, sieve.ErrNoPrimeFactor)
	_, err = es.Factorize(1001)
	require.ErrorIs(t, err, sieve.ErrOutOfRange)

	for n := 2; n <= 1000; n++ {
		f, err := es.Factorize(n)
		require.NoError(t, err)
		prod := 1
		for i, p := range f {
			if i > 0 {
				require.LessOrEqual(t, f[i-1], p)
			}
			prod *= p
		}
		require.Equal(t, n, prod)
	}
}

// TestEulerSieve_PrimesIsCopy ensures callers cannot mutate the sieve through Primes.
func TestEulerSieve_PrimesIsCopy(t *testing.T) {
	t.Parallel()

	es, err := sieve.NewEulerSieve(10)
	require.NoError(t, err)
	ps := es.Primes()
	ps[0] = 4
	assert.Equal(t, []int{2, 3, 5, 7}, es.Primes())
}

func TestEulerSieve_IsPrimeEdges(t *testing.T) {
	t.Parallel()

	es, err := sieve.NewEulerSieve(10)
	require.NoError(t, err)

	for _, n := range []int{-7, 0, 1} {
		ok, err := es.IsPrime(n)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	_, err = es.IsPrime(11)
	require.ErrorIs(t, err, sieve.ErrOutOfRange)
}
