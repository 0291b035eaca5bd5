// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package airline keeps the per-airline codec configurations. Every airline
// gets its own multiplier so callsigns of different carriers never line up.
package airline

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/adriaticflightgroup/flightcode/internal/codec"
)

// ErrUnknownAirline is returned by Lookup for codes that are not registered.
var ErrUnknownAirline = errors.New("invalid airline")

// Airline is one registry entry.
type Airline struct {
	Code   string
	Name   string
	Config codec.Config
}

var builtin = map[string]Airline{
	// Adria Airways
	"JP": {
		Code:   "JP",
		Name:   "Adria Airways",
		Config: codec.Config{Multiplier: 2744, Modulo: 14901},
	},
}

// Registry maps IATA codes to codec configurations.
type Registry struct {
	entries map[string]Airline
}

// NewRegistry returns the built-in airlines with overrides layered on top.
// Override keys are IATA codes and are matched case-insensitively.
func NewRegistry(overrides map[string]codec.Config) *Registry {
	r := &Registry{entries: maps.Clone(builtin)}
	for code, cfg := range overrides {
		code = strings.ToUpper(strings.TrimSpace(code))
		entry := r.entries[code]
		entry.Code = code
		entry.Config = cfg
		r.entries[code] = entry
	}
	return r
}

// Lookup returns the airline registered under code.
func (r *Registry) Lookup(code string) (Airline, error) {
	key := strings.ToUpper(strings.TrimSpace(code))
	a, ok := r.entries[key]
	if !ok {
		return Airline{}, fmt.Errorf("%w: %s", ErrUnknownAirline, key)
	}
	return a, nil
}

// Codec builds the codec for the airline registered under code.
func (r *Registry) Codec(code string) (*codec.Codec, error) {
	a, err := r.Lookup(code)
	if err != nil {
		return nil, err
	}
	c, err := codec.New(a.Config)
	if err != nil {
		return nil, fmt.Errorf("airline %s: %w", a.Code, err)
	}
	return c, nil
}

// All returns every registered airline ordered by code.
func (r *Registry) All() []Airline {
	out := make([]Airline, 0, len(r.entries))
	for _, code := range slices.Sorted(maps.Keys(r.entries)) {
		out = append(out, r.entries[code])
	}
	return out
}
