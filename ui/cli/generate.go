// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/adriaticflightgroup/flightcode/internal/logging"
	"github.com/adriaticflightgroup/flightcode/internal/multiplier"
	"github.com/adriaticflightgroup/flightcode/internal/report"
)

type generateOptions struct {
	single  bool
	copyOut bool
}

func applyGenerateFlags(cmd *cobra.Command, o *generateOptions) {
	cmd.Flags().Int("count", multiplier.DefaultCount, "Number of multipliers to generate")
	cmd.Flags().StringP("output", "o", string(report.FormatText), "Output format: text, single, json or yaml")
	cmd.Flags().BoolVar(&o.single, "single", false, "Print a single multiplier and the modulo (same as --output single --count 1)")
	cmd.Flags().BoolVar(&o.copyOut, "copy", false, "Also copy the output to the clipboard")
}

// runGenerate resolves the modulus, samples multipliers and prints them.
func (a *app) runGenerate(cmd *cobra.Command, arg string, o *generateOptions) error {
	modulus, err := multiplier.ParseModulo(arg, a.cfg.Base)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(a.cfg.Output)
	if err != nil {
		return err
	}
	count := a.cfg.Count
	if o.single {
		format = report.FormatSingle
		count = 1
	}

	s, seed, err := a.sampler()
	if err != nil {
		return err
	}
	logging.Debugf("generating %d multipliers for modulus %d (from %s, base %d)", count, modulus, arg, a.cfg.Base)
	multipliers, err := s.Sample(modulus, count)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	styler := report.Styler{}
	if !o.copyOut {
		styler = report.ForWriter(cmd.OutOrStdout())
	}
	r := report.Report{Modulo: modulus, Multipliers: multipliers, Seed: seed}
	if err := report.Write(&out, r, format, styler); err != nil {
		return err
	}
	return emit(cmd, &out, o.copyOut)
}
