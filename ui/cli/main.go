// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root cobra command, the shared flags and the
// configuration/i18n/logging bootstrap that runs before every command.

package cli

import (
	"bytes"
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/adriaticflightgroup/flightcode/buildvars"
	"github.com/adriaticflightgroup/flightcode/internal/airline"
	"github.com/adriaticflightgroup/flightcode/internal/config"
	"github.com/adriaticflightgroup/flightcode/internal/i18n"
	"github.com/adriaticflightgroup/flightcode/internal/logging"
	"github.com/adriaticflightgroup/flightcode/internal/multiplier"
	"github.com/adriaticflightgroup/flightcode/internal/report"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// app carries the per-invocation state resolved in PersistentPreRunE.
type app struct {
	cfg      config.Config
	verbose  bool
	registry *airline.Registry
}

func defaults() map[string]any {
	return map[string]any{
		"base":         multiplier.DefaultBase,
		"count":        multiplier.DefaultCount,
		"max-attempts": multiplier.DefaultMaxAttempts,
		"seed":         "",
		"output":       string(report.FormatText),
		"language":     "en",
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logging.SetDebug(a.verbose)

	configPath, err := config.ConfigPathFromCli(cmd)
	if err != nil {
		return err
	}
	a.cfg, err = config.LoadConfig[config.Config](cmd, defaults(), configPath)
	if err != nil {
		return err
	}
	if a.cfg.Language == "" {
		a.cfg.Language = "en"
	}
	if !i18n.Supported(a.cfg.Language) {
		return fmt.Errorf("language %q is not supported (available: %s): %w",
			a.cfg.Language, strings.Join(i18n.Languages(), ", "), multiplier.ErrInvalidArgument)
	}
	i18n.Init(a.cfg.Language)

	a.registry = airline.NewRegistry(a.cfg.Airlines)
	logging.Debugf("config: base=%d count=%d max-attempts=%d output=%s language=%s airlines=%d",
		a.cfg.Base, a.cfg.Count, a.cfg.MaxAttempts, a.cfg.Output, a.cfg.Language, len(a.cfg.Airlines))
	return nil
}

// seed returns the configured seed, or nil for a non-reproducible run.
func (a *app) seed() (*uint64, error) {
	s := strings.TrimSpace(a.cfg.Seed)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed %q is not an unsigned integer: %w", s, multiplier.ErrInvalidArgument)
	}
	return &v, nil
}

func (a *app) sampler() (*multiplier.Sampler, *uint64, error) {
	seed, err := a.seed()
	if err != nil {
		return nil, nil, err
	}
	return multiplier.NewSampler(multiplier.NewRand(seed), a.cfg.MaxAttempts), seed, nil
}

// emit writes out to the command's stdout and, when requested, to the clipboard.
func emit(cmd *cobra.Command, out *bytes.Buffer, copyOut bool) error {
	if _, err := io.Copy(cmd.OutOrStdout(), bytes.NewReader(out.Bytes())); err != nil {
		return err
	}
	if !copyOut {
		return nil
	}
	if err := writeClipboard(out.String()); err != nil {
		logging.Warnf("%s", i18n.T("clipboard.failed", err))
		return nil
	}
	logging.Infof("%s", i18n.T("clipboard.copied"))
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// Tests build fresh instances so flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	a := &app{}
	gen := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "flightcode <modulo>",
		Short: "Flightcode generates and applies callsign obfuscation multipliers.",
		Long: `Flightcode scrambles sequential flight numbers into callsign suffixes
using idx * multiplier mod modulo. The multiplier must be coprime to the
modulo so every flight number maps to a unique callsign.

Running without a subcommand generates multipliers. A modulo up to 1000 is
read as the airline's lowest flight number and becomes base - modulo + 1;
larger values are used as the modulus directly.`,
		Args:              modulusArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args[0], gen)
		},
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().String("config", "", "config file (default searches ./, user and system config dirs for flightcode.yaml)")
	cmd.PersistentFlags().String("language", "en", `Output language ("en", "de")`)
	cmd.PersistentFlags().Int64("base", multiplier.DefaultBase, "Highest flight number; lowest flight numbers are resolved against it")
	cmd.PersistentFlags().String("seed", "", "Seed for reproducible output (empty means random)")
	cmd.PersistentFlags().Int("max-attempts", multiplier.DefaultMaxAttempts, "Maximum candidates drawn before giving up")

	applyGenerateFlags(cmd, gen)

	cmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newAirlinesCmd(a),
		newAirlineConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func modulusArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one modulo argument, got %d: %w", len(args), multiplier.ErrInvalidArgument)
	}
	return nil
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		// skip config loading so version works with a broken config file
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our module as a dependency.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// last resort: a commit injected via ldflags
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

const modulePath = "github.com/adriaticflightgroup/flightcode"
