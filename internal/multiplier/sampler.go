// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package multiplier resolves moduli from flight numbers and samples
// multipliers coprime to them.
package multiplier

import (
	"fmt"
	"math"
	rand "math/rand/v2"
	"slices"

	"github.com/adriaticflightgroup/flightcode/internal/logging"
	"github.com/adriaticflightgroup/flightcode/internal/numtheory"
)

const (
	// DefaultCount is the number of multipliers generated when none is requested.
	DefaultCount = 10
	// DefaultMaxAttempts caps the number of candidates drawn by Sample.
	DefaultMaxAttempts = 1_000_000
)

// Rand is the random source consumed by the sampler. *rand.Rand satisfies it.
type Rand interface {
	Int64N(n int64) int64
}

// NewRand returns a PCG generator. A nil seed draws the PCG state from the
// runtime's entropy-seeded source so output differs per run.
func NewRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Sampler draws distinct multipliers coprime to a modulus by rejection sampling.
type Sampler struct {
	Rand        Rand
	MaxAttempts int
}

// NewSampler returns a Sampler using r. maxAttempts <= 0 selects DefaultMaxAttempts.
func NewSampler(r Rand, maxAttempts int) *Sampler {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Sampler{Rand: r, MaxAttempts: maxAttempts}
}

// Available returns how many distinct values in [2, modulus-1] are coprime
// to modulus.
func Available(modulus int64) int64 {
	if modulus <= 2 {
		return 0
	}
	// phi counts 1 as well, which is outside the candidate range
	return numtheory.Totient(modulus) - 1
}

// Sample returns count distinct values in [2, modulus-1], each coprime to
// modulus, in ascending order.
func (s *Sampler) Sample(modulus int64, count int) ([]int64, error) {
	if count < 1 {
		return nil, fmt.Errorf("count %d must be at least 1: %w", count, ErrInvalidArgument)
	}
	if modulus <= 2 {
		return nil, fmt.Errorf("modulus %d must be greater than 2: %w", modulus, ErrInvalidModulus)
	}
	if int64(count) > modulus-2 {
		return nil, fmt.Errorf("requested %d multipliers but only %d candidates exist below %d: %w",
			count, modulus-2, modulus, ErrExhaustedSampleSpace)
	}
	// factoring is cheap up to MaxUint32; beyond that the attempt cap decides
	if modulus <= math.MaxUint32 {
		if avail := Available(modulus); int64(count) > avail {
			return nil, fmt.Errorf("requested %d multipliers but only %d coprime values exist below %d: %w",
				count, avail, modulus, ErrExhaustedSampleSpace)
		}
	}

	limit := s.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}

	found := make(map[int64]struct{}, count)
	attempts := 0
	for len(found) < count {
		if attempts >= limit {
			return nil, fmt.Errorf("found %d of %d multipliers for %d after %d attempts: %w",
				len(found), count, modulus, attempts, ErrExhaustedSampleSpace)
		}
		attempts++
		candidate := 2 + s.Rand.Int64N(modulus-2)
		if numtheory.Coprime(candidate, modulus) {
			found[candidate] = struct{}{}
		}
	}
	logging.Debugf("sampled %d multipliers for modulus %d in %d attempts", count, modulus, attempts)

	out := make([]int64, 0, len(found))
	for m := range found {
		out = append(out, m)
	}
	slices.Sort(out)
	return out, nil
}
