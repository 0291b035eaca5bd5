package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/adriaticflightgroup/flightcode/internal/i18n"
)

func sample() Report {
	return Report{Modulo: 80285, Multipliers: []int64{3, 17, 4211}}
}

func TestWrite_Text(t *testing.T) {
	i18n.Init("en")
	var buf bytes.Buffer
	if err := Write(&buf, sample(), FormatText, Styler{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "Modulo: 80285\nMultipliers:\n  - 3\n  - 17\n  - 4211\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWrite_TextWithSeed(t *testing.T) {
	i18n.Init("en")
	seed := uint64(99)
	r := sample()
	r.Seed = &seed
	var buf bytes.Buffer
	if err := Write(&buf, r, FormatText, Styler{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "Seed: 99\n") {
		t.Fatalf("seed line missing: %s", buf.String())
	}
}

func TestWrite_Single(t *testing.T) {
	i18n.Init("en")
	var buf bytes.Buffer
	if err := Write(&buf, sample(), FormatSingle, Styler{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "Multiplier: 3\nModulo: 80285\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if err := Write(&buf, Report{Modulo: 10}, FormatSingle, Styler{}); err == nil {
		t.Fatalf("expected error for empty report")
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(), FormatJSON, Styler{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var got Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got.Modulo != 80285 || len(got.Multipliers) != 3 || got.Seed != nil {
		t.Fatalf("unexpected decoded report %+v", got)
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(), FormatYAML, Styler{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var got Report
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid yaml %q: %v", buf.String(), err)
	}
	if got.Modulo != 80285 || got.Multipliers[2] != 4211 {
		t.Fatalf("unexpected decoded report %+v", got)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, " yaml ": FormatYAML, "single": FormatSingle} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestStyler_DisabledForBuffers(t *testing.T) {
	st := ForWriter(&bytes.Buffer{})
	if st.Enabled {
		t.Fatalf("styling should be disabled for non-terminal writers")
	}
	if st.Label("x") != "x" || st.Value("y") != "y" {
		t.Fatalf("disabled styler must not alter text")
	}
}
