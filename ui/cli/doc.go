// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Flightcode using Cobra.
// It wires configuration, localisation and logging, and delegates the actual
// work to the multiplier, codec and airline packages. CLI code should remain
// thin.
package cli
