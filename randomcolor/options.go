package randomcolor

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/color-game/randomcolor/dictionary"
)

var (
	ErrInvalidAlpha      = errors.New("alpha must be between 0 and 1")
	ErrUnknownLuminosity = errors.New("unknown luminosity")
)

// Luminosity narrows the brightness (and saturation) a color is drawn from.
type Luminosity uint8

const (
	LuminosityRandom Luminosity = iota
	Bright
	Light
	Dark
)

var luminosityNames = map[Luminosity]string{
	LuminosityRandom: "random",
	Bright:           "bright",
	Light:            "light",
	Dark:             "dark",
}

func (l Luminosity) String() string {
	if name, ok := luminosityNames[l]; ok {
		return name
	}
	return fmt.Sprintf("luminosity(%d)", uint8(l))
}

// ParseLuminosity maps a case-insensitive name to a Luminosity. An empty
// string selects LuminosityRandom.
func ParseLuminosity(name string) (Luminosity, error) {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	if cleaned == "" {
		return LuminosityRandom, nil
	}
	for l, lName := range luminosityNames {
		if lName == cleaned {
			return l, nil
		}
	}
	return LuminosityRandom, fmt.Errorf("%w: %q", ErrUnknownLuminosity, name)
}

// Options is a validated generation request. The zero value asks for any
// chromatic hue, unconstrained luminosity, fresh entropy and opaque alpha.
type Options struct {
	hue         dictionary.Family
	luminosity  Luminosity
	seed        uint64
	seeded      bool
	alpha       float64
	hasAlpha    bool
	randomAlpha bool
}

func (o Options) Hue() dictionary.Family { return o.hue }
func (o Options) Luminosity() Luminosity { return o.luminosity }
func (o Options) RandomAlpha() bool      { return o.randomAlpha }

// Seed returns the configured seed and whether one was set.
func (o Options) Seed() (uint64, bool) { return o.seed, o.seeded }

// Alpha returns the explicit alpha, or 1 when none was set.
func (o Options) Alpha() float64 {
	if o.hasAlpha {
		return o.alpha
	}
	return 1
}

// Builder assembles Options. Setters may be chained; validation happens in
// Build.
type Builder struct {
	opts Options
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Hue(family dictionary.Family) *Builder {
	b.opts.hue = family
	return b
}

func (b *Builder) Luminosity(luminosity Luminosity) *Builder {
	b.opts.luminosity = luminosity
	return b
}

func (b *Builder) Seed(seed uint64) *Builder {
	b.opts.seed = seed
	b.opts.seeded = true
	return b
}

// SeedString seeds from an arbitrary string. Equal strings always give the
// same seed, across processes.
func (b *Builder) SeedString(seed string) *Builder {
	return b.Seed(HashSeed(seed))
}

// Alpha sets a fixed alpha and clears any earlier RandomAlpha.
func (b *Builder) Alpha(alpha float64) *Builder {
	b.opts.alpha = alpha
	b.opts.hasAlpha = true
	b.opts.randomAlpha = false
	return b
}

// RandomAlpha draws alpha uniformly from [0,1) on every generation.
func (b *Builder) RandomAlpha() *Builder {
	b.opts.randomAlpha = true
	b.opts.hasAlpha = false
	return b
}

func (b *Builder) Build() (Options, error) {
	if b.opts.hasAlpha {
		a := b.opts.alpha
		if math.IsNaN(a) || a < 0 || a > 1 {
			return Options{}, fmt.Errorf("%w: got %v", ErrInvalidAlpha, a)
		}
	}
	return b.opts, nil
}

// HashSeed folds a string into a 64-bit seed with FNV-1a.
func HashSeed(seed string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return h.Sum64()
}
