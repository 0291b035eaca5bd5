package numtheory

import (
	"errors"
	"testing"
)

func TestGCDAndCoprime(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{12, 18, 6},
		{17, 5, 1},
		{0, 9, 9},
		{-8, 12, 4},
		{2744, 14901, 1},
	}
	for _, c := range cases {
		if got := GCD(c.a, c.b); got != c.want {
			t.Fatalf("GCD(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
		if Coprime(c.a, c.b) != (c.want == 1) {
			t.Fatalf("Coprime(%d,%d) disagrees with GCD %d", c.a, c.b, c.want)
		}
	}
}

func TestModInverse_KnownValues(t *testing.T) {
	cases := []struct {
		a, m, want int64
	}{
		{4211, 9900, 7991},
		{7127, 9999, 8018},
		{1234, 9999, 5275},
		{2744, 14901, 9791},
		{5, 1, 0},
	}
	for _, c := range cases {
		got, err := ModInverse(c.a, c.m)
		if err != nil {
			t.Fatalf("ModInverse(%d,%d) error: %v", c.a, c.m, err)
		}
		if got != c.want {
			t.Fatalf("ModInverse(%d,%d) = %d, want %d", c.a, c.m, got, c.want)
		}
	}
}

func TestModInverse_NotCoprime(t *testing.T) {
	if _, err := ModInverse(6, 9); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("expected ErrNotInvertible, got %v", err)
	}
	if _, err := ModInverse(3, 0); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("expected ErrNotInvertible for zero modulus, got %v", err)
	}
}

func TestTotient(t *testing.T) {
	cases := map[int64]int64{
		0:     0,
		1:     1,
		10:    4,
		9999:  6000,
		14901: 9932,
		80285: 64224,
		97:    96,
	}
	for n, want := range cases {
		if got := Totient(n); got != want {
			t.Fatalf("Totient(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestTotient_MatchesBruteForce(t *testing.T) {
	for n := int64(1); n <= 500; n++ {
		var count int64
		for k := int64(1); k <= n; k++ {
			if Coprime(k, n) {
				count++
			}
		}
		if got := Totient(n); got != count {
			t.Fatalf("Totient(%d) = %d, brute force %d", n, got, count)
		}
	}
}

func TestTotient_AboveUint32(t *testing.T) {
	cases := map[int64]int64{
		3 << 40: 1 << 40,
		1 << 62: 1 << 61,
		// 2^32+1 = 641 * 6700417
		4294967297: 640 * 6700416,
	}
	for n, want := range cases {
		if got := Totient(n); got != want {
			t.Fatalf("Totient(%d) = %d, want %d", n, got, want)
		}
	}
}
