// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Flightcode.
//
// Usage:
//
//	go run . <modulo> [flags]
//	./flightcode <modulo> [flags]
//
// See --help for subcommands and options.
package main

import (
	"os"

	"github.com/adriaticflightgroup/flightcode/internal/logging"
	"github.com/adriaticflightgroup/flightcode/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
