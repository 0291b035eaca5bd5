// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package numtheory holds the small number-theoretic helpers used to pick
// and invert callsign multipliers: gcd, coprimality, modular inverses and
// Euler's totient.
package numtheory

import (
	"errors"
	"fmt"
	"math"

	"modernc.org/mathutil"
)

// ErrNotInvertible is returned when a value has no inverse modulo m.
var ErrNotInvertible = errors.New("value is not invertible")

// GCD returns the greatest common divisor of |a| and |b|.
func GCD(a, b int64) int64 {
	return int64(mathutil.GCDUint64(abs(a), abs(b)))
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b int64) bool {
	return GCD(a, b) == 1
}

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m).
// For m == 1 every value is congruent to 0, so 0 is returned.
func ModInverse(a, m int64) (int64, error) {
	if m <= 0 {
		return 0, fmt.Errorf("modulus %d must be positive: %w", m, ErrNotInvertible)
	}
	if m == 1 {
		return 0, nil
	}
	a %= m
	if a < 0 {
		a += m
	}

	// extended Euclid, tracking only the coefficient of a
	oldR, r := a, m
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, fmt.Errorf("%d mod %d (gcd %d): %w", a, m, oldR, ErrNotInvertible)
	}
	if oldS < 0 {
		oldS += m
	}
	return oldS, nil
}

// Totient returns Euler's phi(n), the count of integers in [1, n] coprime to n.
// Totient(n) is 0 for n < 1. Above MaxUint32 it falls back to trial division,
// which takes sqrt(n) steps for a large prime n.
func Totient(n int64) int64 {
	if n < 1 {
		return 0
	}
	if n == 1 {
		return 1
	}
	if n <= math.MaxUint32 {
		phi := n
		for _, term := range mathutil.FactorInt(uint32(n)) {
			p := int64(term.Prime)
			phi = phi / p * (p - 1)
		}
		return phi
	}

	phi, rest := n, n
	for p := int64(2); p <= rest/p; p++ {
		if rest%p != 0 {
			continue
		}
		for rest%p == 0 {
			rest /= p
		}
		phi = phi / p * (p - 1)
	}
	if rest > 1 {
		phi = phi / rest * (rest - 1)
	}
	return phi
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
