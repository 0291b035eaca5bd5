// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/adriaticflightgroup/flightcode/internal/codec"
	"github.com/adriaticflightgroup/flightcode/internal/i18n"
	"github.com/adriaticflightgroup/flightcode/internal/logging"
	"github.com/adriaticflightgroup/flightcode/internal/multiplier"
)

// newEncodeCmd represents the 'encode' command.
func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <airline> <flight-number>...",
		Short: "Encode flight numbers into callsign suffixes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.registry.Codec(args[0])
			if err != nil {
				return err
			}
			var out bytes.Buffer
			for _, arg := range args[1:] {
				n, err := strconv.Atoi(strings.TrimSpace(arg))
				if err != nil {
					return fmt.Errorf("flight number %q is not an integer: %w", arg, multiplier.ErrInvalidArgument)
				}
				code, err := c.Encode(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(&out, i18n.T("codec.encoded", n, code))
			}
			return emit(cmd, &out, false)
		},
	}
}

// newDecodeCmd represents the 'decode' command.
func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <airline> <code>...",
		Short: "Decode callsign suffixes back into flight numbers",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.registry.Codec(args[0])
			if err != nil {
				return err
			}
			var out bytes.Buffer
			for _, arg := range args[1:] {
				code := strings.ToUpper(strings.TrimSpace(arg))
				n, err := c.Decode(code)
				if err != nil {
					return err
				}
				fmt.Fprintln(&out, i18n.T("codec.decoded", code, n))
			}
			return emit(cmd, &out, false)
		},
	}
}

// newAirlinesCmd lists the registered airlines.
func newAirlinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "airlines",
		Short: "List known airlines and their encoding parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out bytes.Buffer
			fmt.Fprintln(&out, i18n.T("airlines.header"))
			for _, al := range a.registry.All() {
				fmt.Fprintln(&out, i18n.T("airlines.entry", al.Code, al.Name, al.Config.Multiplier, al.Config.Modulo))
			}
			return emit(cmd, &out, false)
		},
	}
}

// newAirlineConfigCmd generates a ready-to-paste airlines entry for the
// config file.
func newAirlineConfigCmd(a *app) *cobra.Command {
	var copyOut bool
	cmd := &cobra.Command{
		Use:   "airline-config <iata> <modulo>",
		Short: "Generate an airlines config entry with a fresh coprime multiplier",
		Long: `Resolves the modulo like the root command, samples one multiplier and
prints a YAML snippet for the airlines section of flightcode.yaml. The
entry is checked by building a codec from it before it is printed.

The base becomes the entry's max_flight_number and must not exceed the
codec limit of 15000.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			iata := strings.ToUpper(strings.TrimSpace(args[0]))
			if iata == "" {
				return fmt.Errorf("airline code must not be empty: %w", multiplier.ErrInvalidArgument)
			}
			if a.cfg.Base > codec.MaxFlightNumber {
				return fmt.Errorf("base %d exceeds the codec limit of %d flight numbers; use --base %d or lower: %w",
					a.cfg.Base, codec.MaxFlightNumber, codec.MaxFlightNumber, codec.ErrInvalidConfig)
			}
			modulus, err := multiplier.ParseModulo(args[1], a.cfg.Base)
			if err != nil {
				return err
			}
			s, _, err := a.sampler()
			if err != nil {
				return err
			}
			picked, err := s.Sample(modulus, 1)
			if err != nil {
				return err
			}

			entry := codec.Config{
				Multiplier:      int(picked[0]),
				Modulo:          int(modulus),
				MaxFlightNumber: int(a.cfg.Base),
			}
			if _, err := codec.New(entry); err != nil {
				return err
			}
			logging.Debugf("airline %s: multiplier %d modulo %d", iata, entry.Multiplier, entry.Modulo)

			data, err := yaml.Marshal(map[string]map[string]codec.Config{
				"airlines": {iata: entry},
			})
			if err != nil {
				return err
			}
			var out bytes.Buffer
			fmt.Fprintf(&out, "# %s\n", i18n.T("airline_config.comment", iata, modulus))
			out.Write(data)
			return emit(cmd, &out, copyOut)
		},
	}
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Also copy the snippet to the clipboard")
	return cmd
}
