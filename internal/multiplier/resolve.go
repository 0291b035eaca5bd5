// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

package multiplier

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultBase is the highest flight number of the classic four digit range.
	DefaultBase int64 = 9999
	// LowestFlightThreshold separates "lowest flight number" inputs from
	// inputs that are already a modulus.
	LowestFlightThreshold int64 = 1000
)

// Resolve turns a raw CLI value into a modulus. Values up to
// LowestFlightThreshold are a lowest flight number and map to
// base - raw + 1; larger values are used as the modulus directly.
func Resolve(raw, base int64) (int64, error) {
	if raw < 1 {
		return 0, fmt.Errorf("modulo %d must be positive: %w", raw, ErrInvalidArgument)
	}
	modulus := raw
	if raw <= LowestFlightThreshold {
		modulus = base - raw + 1
	}
	if modulus <= 2 {
		return 0, fmt.Errorf("modulus %d (from %d, base %d) must be greater than 2: %w", modulus, raw, base, ErrInvalidModulus)
	}
	return modulus, nil
}

// ParseModulo parses the positional modulo argument and resolves it.
func ParseModulo(arg string, base int64) (int64, error) {
	raw, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("modulo %q is not an integer: %w", arg, ErrInvalidArgument)
	}
	return Resolve(raw, base)
}
