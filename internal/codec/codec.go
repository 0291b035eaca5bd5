// Copyright (c) 2026 Flightcode Team
// Flightcode - flight number callsign obfuscation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package codec turns sequential flight numbers into scrambled callsign
// suffixes and back.
//
// A flight number n is mapped to an index i = n - min, scrambled as
// s = i * multiplier mod modulo, and written as a numeric prefix followed by
// one character from each charset. Because the multiplier is coprime to the
// modulo the mapping is a bijection and decoding multiplies by the inverse.
// Neighbouring flight numbers therefore get unrelated callsigns.
package codec

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/adriaticflightgroup/flightcode/internal/numtheory"
)

const (
	// DefaultFirstCharset is used for the first suffix character.
	DefaultFirstCharset = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	// DefaultLastCharset is used for the second suffix character.
	DefaultLastCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	// MaxFlightNumber is the largest supported flight number.
	MaxFlightNumber = 15000
)

var (
	ErrInvalidConfig = errors.New("invalid codec configuration")
	ErrOutOfRange    = errors.New("flight number out of range")
	ErrTooLow        = errors.New("flight number is too low")
	ErrInvalidCode   = errors.New("invalid code")
)

var codePattern = regexp.MustCompile(`^(\d{1,2})([A-Z0-9][A-Z])$`)

// Config describes one encoding scheme. Zero values select the defaults.
type Config struct {
	Multiplier      int    `mapstructure:"multiplier" yaml:"multiplier" json:"multiplier"`
	Modulo          int    `mapstructure:"modulo" yaml:"modulo" json:"modulo"`
	MaxFlightNumber int    `mapstructure:"max_flight_number" yaml:"max_flight_number,omitempty" json:"max_flight_number,omitempty"`
	FirstCharset    string `mapstructure:"first_charset" yaml:"first_charset,omitempty" json:"first_charset,omitempty"`
	LastCharset     string `mapstructure:"last_charset" yaml:"last_charset,omitempty" json:"last_charset,omitempty"`
}

// Codec encodes and decodes flight numbers for a single Config.
type Codec struct {
	multiplier int
	modulo     int
	inverse    int
	maxFlight  int
	first      string
	last       string
}

// New validates cfg and precomputes the modular inverse.
func New(cfg Config) (*Codec, error) {
	c := &Codec{
		multiplier: cfg.Multiplier,
		modulo:     cfg.Modulo,
		maxFlight:  cfg.MaxFlightNumber,
		first:      cfg.FirstCharset,
		last:       cfg.LastCharset,
	}
	if c.maxFlight == 0 {
		c.maxFlight = MaxFlightNumber
	}
	if c.modulo == 0 {
		c.modulo = c.maxFlight
	}
	if c.first == "" {
		c.first = DefaultFirstCharset
	}
	if c.last == "" {
		c.last = DefaultLastCharset
	}

	switch {
	case c.maxFlight < 1 || c.maxFlight > MaxFlightNumber:
		return nil, fmt.Errorf("max flight number must be between 1 and %d, got %d: %w", MaxFlightNumber, c.maxFlight, ErrInvalidConfig)
	case c.modulo < 1 || c.modulo > c.maxFlight:
		return nil, fmt.Errorf("modulo must be between 1 and %d, got %d: %w", c.maxFlight, c.modulo, ErrInvalidConfig)
	case c.multiplier < 1:
		return nil, fmt.Errorf("multiplier must be positive, got %d: %w", c.multiplier, ErrInvalidConfig)
	case !validCharset(c.first) || !validCharset(c.last):
		return nil, fmt.Errorf("charsets must be non-empty and unique: %w", ErrInvalidConfig)
	case (c.modulo-1)/(len(c.first)*len(c.last)) >= 99:
		return nil, fmt.Errorf("charsets too small for modulo %d, prefix would exceed two digits: %w", c.modulo, ErrInvalidConfig)
	}

	// keeps index*multiplier in Encode below modulo^2
	c.multiplier %= c.modulo
	if !numtheory.Coprime(int64(c.multiplier), int64(c.modulo)) {
		return nil, fmt.Errorf("multiplier %d is not coprime with modulo %d: %w", cfg.Multiplier, c.modulo, ErrInvalidConfig)
	}

	inv, err := numtheory.ModInverse(int64(c.multiplier), int64(c.modulo))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c.inverse = int(inv)
	return c, nil
}

// MinFlightNumber is the lowest flight number the codec accepts.
func (c *Codec) MinFlightNumber() int {
	return c.maxFlight - c.modulo + 1
}

// MaxFlightNumber is the highest flight number the codec accepts.
func (c *Codec) MaxFlightNumber() int {
	return c.maxFlight
}

// Encode returns the callsign suffix for flightNumber.
func (c *Codec) Encode(flightNumber int) (string, error) {
	if flightNumber < 1 || flightNumber > c.maxFlight {
		return "", fmt.Errorf("flight number must be between 1 and %d, got %d: %w", c.maxFlight, flightNumber, ErrOutOfRange)
	}
	minFlight := c.MinFlightNumber()
	if flightNumber < minFlight {
		return "", fmt.Errorf("%w: %d (minimum %d)", ErrTooLow, flightNumber, minFlight)
	}

	base2 := len(c.last)
	suffixTotal := len(c.first) * base2

	index := flightNumber - minFlight
	scrambled := (index * c.multiplier) % c.modulo

	prefix := scrambled/suffixTotal + 1
	suffix := scrambled % suffixTotal

	var b strings.Builder
	b.WriteString(strconv.Itoa(prefix))
	b.WriteByte(c.first[suffix/base2])
	b.WriteByte(c.last[suffix%base2])
	return b.String(), nil
}

// Decode reverses Encode.
func (c *Codec) Decode(code string) (int, error) {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return 0, fmt.Errorf("%w: format of %q", ErrInvalidCode, code)
	}
	prefix, err := strconv.Atoi(m[1])
	if err != nil || prefix < 1 || strings.HasPrefix(m[1], "0") {
		return 0, fmt.Errorf("%w: prefix of %q", ErrInvalidCode, code)
	}
	i1 := strings.IndexByte(c.first, m[2][0])
	i2 := strings.IndexByte(c.last, m[2][1])
	if i1 < 0 || i2 < 0 {
		return 0, fmt.Errorf("%w: characters in suffix %s", ErrInvalidCode, m[2])
	}

	base2 := len(c.last)
	scrambled := (prefix-1)*len(c.first)*base2 + i1*base2 + i2
	if scrambled >= c.modulo {
		return 0, fmt.Errorf("%w: %q is outside the encoded range", ErrInvalidCode, code)
	}

	index := (scrambled * c.inverse) % c.modulo
	return index + c.MinFlightNumber(), nil
}

func validCharset(s string) bool {
	if s == "" {
		return false
	}
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		if r > 0x7f {
			return false
		}
		if _, dup := seen[r]; dup {
			return false
		}
		seen[r] = struct{}{}
	}
	return true
}
