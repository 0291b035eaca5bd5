// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

// Command flightcode is the installable binary:
//
//	go install github.com/adriaticflightgroup/flightcode/cmd/flightcode@latest
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
