package randomcolor

import (
	"errors"
	"math"
	"testing"

	"github.com/color-game/randomcolor/dictionary"
)

func TestBuildAlphaValidation(t *testing.T) {
	tests := []struct {
		name    string
		alpha   float64
		wantErr bool
	}{
		{"zero accepted", 0, false},
		{"one accepted", 1, false},
		{"half accepted", 0.5, false},
		{"above one rejected", 1.5, true},
		{"negative rejected", -0.1, true},
		{"NaN rejected", math.NaN(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := NewBuilder().Alpha(tc.alpha).Build()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidAlpha) {
					t.Fatalf("Build() error = %v, want ErrInvalidAlpha", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build() unexpected error: %v", err)
			}
			if opts.Alpha() != tc.alpha {
				t.Fatalf("Alpha() = %v, want %v", opts.Alpha(), tc.alpha)
			}
		})
	}
}

func TestRandomAlphaOverridesInvalidAlpha(t *testing.T) {
	opts, err := NewBuilder().Alpha(3).RandomAlpha().Build()
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if !opts.RandomAlpha() {
		t.Fatal("RandomAlpha() = false, want true")
	}
}

func TestBuilderDefaults(t *testing.T) {
	opts, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if opts.Hue() != dictionary.Random {
		t.Fatalf("Hue() = %v, want random", opts.Hue())
	}
	if opts.Luminosity() != LuminosityRandom {
		t.Fatalf("Luminosity() = %v, want random", opts.Luminosity())
	}
	if _, ok := opts.Seed(); ok {
		t.Fatal("Seed() reported a seed on default options")
	}
	if opts.Alpha() != 1 {
		t.Fatalf("Alpha() = %v, want 1", opts.Alpha())
	}
}

func TestSeedString(t *testing.T) {
	a, _ := NewBuilder().SeedString("A random seed").Build()
	b, _ := NewBuilder().SeedString("A random seed").Build()
	c, _ := NewBuilder().SeedString("another seed").Build()

	seedA, ok := a.Seed()
	if !ok {
		t.Fatal("SeedString did not set a seed")
	}
	seedB, _ := b.Seed()
	seedC, _ := c.Seed()
	if seedA != seedB {
		t.Fatalf("equal strings gave seeds %d and %d", seedA, seedB)
	}
	if seedA == seedC {
		t.Fatalf("different strings gave the same seed %d", seedA)
	}
}

func TestHashSeedIsFNV1a(t *testing.T) {
	// FNV-1a 64-bit offset basis
	if got := HashSeed(""); got != 0xcbf29ce484222325 {
		t.Fatalf("HashSeed(\"\") = %#x, want offset basis", got)
	}
}

func TestParseLuminosity(t *testing.T) {
	tests := []struct {
		in      string
		want    Luminosity
		wantErr bool
	}{
		{"", LuminosityRandom, false},
		{"random", LuminosityRandom, false},
		{"Bright", Bright, false},
		{" light ", Light, false},
		{"DARK", Dark, false},
		{"dim", LuminosityRandom, true},
	}

	for _, tc := range tests {
		got, err := ParseLuminosity(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownLuminosity) {
				t.Fatalf("ParseLuminosity(%q) error = %v, want ErrUnknownLuminosity", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseLuminosity(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}
