// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report renders generated multipliers for humans and for tools.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"golang.org/x/term"

	"github.com/adriaticflightgroup/flightcode/internal/i18n"
)

// Format selects how a Report is written.
type Format string

const (
	// FormatText prints the modulus followed by a bulleted multiplier list.
	FormatText Format = "text"
	// FormatSingle prints only the first multiplier and the modulus.
	FormatSingle Format = "single"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatSingle, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, single, json or yaml)", ErrUnknownFormat, s)
	}
}

// Report is the result of one generator run.
type Report struct {
	Modulo      int64   `json:"modulo" yaml:"modulo"`
	Multipliers []int64 `json:"multipliers" yaml:"multipliers"`
	Seed        *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// Styler decorates text lines. The zero value leaves text untouched.
type Styler struct {
	Enabled bool
}

// ForWriter enables styling when w is a terminal.
func ForWriter(w io.Writer) Styler {
	if f, ok := w.(*os.File); ok {
		return Styler{Enabled: term.IsTerminal(int(f.Fd()))}
	}
	return Styler{}
}

// Label styles a heading or label.
func (s Styler) Label(text string) string {
	if !s.Enabled {
		return text
	}
	return labelStyle.Render(text)
}

// Value styles a value.
func (s Styler) Value(text string) string {
	if !s.Enabled {
		return text
	}
	return valueStyle.Render(text)
}

// Write renders r in format f to w.
func Write(w io.Writer, r Report, f Format, st Styler) error {
	switch f {
	case FormatText, "":
		return writeText(w, r, st)
	case FormatSingle:
		return writeSingle(w, r, st)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func writeText(w io.Writer, r Report, st Styler) error {
	var b strings.Builder
	b.WriteString(st.Label(i18n.T("report.modulo", r.Modulo)))
	b.WriteByte('\n')
	if r.Seed != nil {
		b.WriteString(i18n.T("report.seed", *r.Seed))
		b.WriteByte('\n')
	}
	b.WriteString(st.Label(i18n.T("report.multipliers")))
	b.WriteByte('\n')
	for _, m := range r.Multipliers {
		b.WriteString("  - ")
		b.WriteString(st.Value(fmt.Sprint(m)))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSingle(w io.Writer, r Report, st Styler) error {
	if len(r.Multipliers) == 0 {
		return errors.New("report has no multipliers")
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n",
		st.Label(i18n.T("report.multiplier", r.Multipliers[0])),
		st.Label(i18n.T("report.modulo", r.Modulo)))
	return err
}
