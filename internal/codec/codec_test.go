package codec

import (
	"errors"
	"testing"
)

func jp(t *testing.T) *Codec {
	t.Helper()
	c, err := New(Config{Multiplier: 2744, Modulo: 14901})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestEncode_KnownValues(t *testing.T) {
	c := jp(t)
	cases := map[int]string{
		100:   "10A",
		101:   "4CJ",
		5000:  "70C",
		9423:  "15YE",
		9949:  "13ER",
		15000: "15WP",
	}
	for n, want := range cases {
		got, err := c.Encode(n)
		if err != nil {
			t.Fatalf("Encode(%d): %v", n, err)
		}
		if got != want {
			t.Fatalf("Encode(%d) = %q, want %q", n, got, want)
		}
		back, err := c.Decode(got)
		if err != nil {
			t.Fatalf("Decode(%q): %v", got, err)
		}
		if back != n {
			t.Fatalf("Decode(%q) = %d, want %d", got, back, n)
		}
	}
}

func TestRoundTrip_FullRange(t *testing.T) {
	c := jp(t)
	seen := make(map[string]int, c.MaxFlightNumber())
	for n := c.MinFlightNumber(); n <= c.MaxFlightNumber(); n++ {
		code, err := c.Encode(n)
		if err != nil {
			t.Fatalf("Encode(%d): %v", n, err)
		}
		if prev, dup := seen[code]; dup {
			t.Fatalf("collision: %d and %d both encode to %q", prev, n, code)
		}
		seen[code] = n
		got, err := c.Decode(code)
		if err != nil {
			t.Fatalf("Decode(%q): %v", code, err)
		}
		if got != n {
			t.Fatalf("Decode(Encode(%d)) = %d", n, got)
		}
	}
}

func TestEncode_Bounds(t *testing.T) {
	c := jp(t)
	for _, n := range []int{0, 15001} {
		if _, err := c.Encode(n); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Encode(%d) expected ErrOutOfRange, got %v", n, err)
		}
	}
	if _, err := c.Encode(1); !errors.Is(err, ErrTooLow) {
		t.Fatalf("Encode(1) expected ErrTooLow, got %v", err)
	}
}

func TestDecode_InvalidCodes(t *testing.T) {
	c := jp(t)
	for _, code := range []string{"AA", "", "1aa", "123AA", "1AI", "01AA", "0AA", "99ZZ"} {
		if _, err := c.Decode(code); !errors.Is(err, ErrInvalidCode) {
			t.Fatalf("Decode(%q) expected ErrInvalidCode, got %v", code, err)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Config{Multiplier: 7})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.MinFlightNumber() != 1 || c.MaxFlightNumber() != MaxFlightNumber {
		t.Fatalf("unexpected range [%d,%d]", c.MinFlightNumber(), c.MaxFlightNumber())
	}
	code, err := c.Encode(1)
	if err != nil || code != "10A" {
		t.Fatalf("Encode(1) = %q, %v", code, err)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cases := map[string]Config{
		"not coprime":     {Multiplier: 3, Modulo: 9999},
		"zero multiplier": {Modulo: 9999},
		"max too large":   {Multiplier: 7, MaxFlightNumber: MaxFlightNumber + 1},
		"modulo too big":  {Multiplier: 7, Modulo: 10000, MaxFlightNumber: 9999},
		"dup charset":     {Multiplier: 7, FirstCharset: "AAB"},
		"tiny charsets":   {Multiplier: 7, Modulo: 9999, MaxFlightNumber: 9999, FirstCharset: "A", LastCharset: "B"},
	}
	for name, cfg := range cases {
		if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestNew_ReducesLargeMultiplier(t *testing.T) {
	big, err := New(Config{Multiplier: 15000*600000000000000 + 7})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	small, err := New(Config{Multiplier: 7})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, n := range []int{1, 3, 9999, 15000} {
		got, err := big.Encode(n)
		if err != nil {
			t.Fatalf("Encode(%d): %v", n, err)
		}
		want, _ := small.Encode(n)
		if got != want {
			t.Fatalf("Encode(%d) = %q, want %q", n, got, want)
		}
		back, err := big.Decode(got)
		if err != nil || back != n {
			t.Fatalf("Decode(%q) = %d, %v", got, back, err)
		}
	}
}

func TestNew_MultiplierMultipleOfModulo(t *testing.T) {
	if _, err := New(Config{Multiplier: 2 * 14901, Modulo: 14901}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
