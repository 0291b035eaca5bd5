// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

package multiplier

import "errors"

var (
	// ErrInvalidArgument is returned for a non-integer or out-of-range
	// modulo or count.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidModulus is returned when the resolved modulus is <= 2.
	ErrInvalidModulus = errors.New("invalid modulus")
	// ErrExhaustedSampleSpace is returned when not enough distinct coprime
	// multipliers exist below the modulus, or the attempt cap was reached.
	ErrExhaustedSampleSpace = errors.New("exhausted sample space")
)
