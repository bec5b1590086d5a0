package randomcolor

import (
	crand "crypto/rand"
	"math/rand/v2"

	"github.com/color-game/randomcolor/dictionary"
)

// Source is the uniform random source a Generator draws from. *rand.Rand
// from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewEntropySource returns a source keyed from the operating system's
// entropy pool.
func NewEntropySource() *rand.Rand {
	var key [32]byte
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = crand.Read(key[:])
	return rand.New(rand.NewChaCha8(key))
}

const (
	brightnessMax = 100
	// saturation split between Light and Bright
	saturationPivot = 55
	brightBand      = 5
	darkBand        = 20
	darkSaturation  = 10
)

// Generator draws successive colors for one Options value from one Source.
// A Generator is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	opts Options
	src  Source
}

// New returns a Generator seeded from opts, or from fresh entropy when opts
// carries no seed.
func New(opts Options) *Generator {
	if seed, ok := opts.Seed(); ok {
		return NewWithSource(opts, NewSource(seed))
	}
	return NewWithSource(opts, NewEntropySource())
}

func NewWithSource(opts Options, src Source) *Generator {
	return &Generator{opts: opts, src: src}
}

// Generate returns one color for opts. Identical seeded options always give
// the identical color.
func Generate(opts Options) Color {
	return New(opts).Next()
}

// Next draws the next color.
func (g *Generator) Next() Color {
	family := g.pickFamily()
	entry := dictionary.Lookup(family)

	hue := g.pickHue(entry)
	saturation := g.pickSaturation(entry)
	brightness := g.pickBrightness(entry, saturation)

	return Color{
		Hue:        hue,
		Saturation: saturation,
		Brightness: brightness,
		Alpha:      g.pickAlpha(),
		Family:     family,
		Luminosity: g.opts.luminosity,
	}
}

func (g *Generator) pickFamily() dictionary.Family {
	if g.opts.hue != dictionary.Random {
		return g.opts.hue
	}
	return dictionary.Chromatic[g.src.IntN(len(dictionary.Chromatic))]
}

func (g *Generator) pickHue(entry dictionary.Entry) int {
	hue := g.within(entry.HueRange[0], entry.HueRange[1])
	if hue < 0 {
		hue += 360
	}
	return hue
}

func (g *Generator) pickSaturation(entry dictionary.Entry) int {
	if entry.Family == dictionary.Monochrome {
		return 0
	}

	sMin, sMax := entry.SaturationRange()
	switch g.opts.luminosity {
	case Bright:
		return g.within(saturationPivot, sMax)
	case Light:
		return g.within(sMin, saturationPivot)
	case Dark:
		return g.within(sMax-darkSaturation, sMax)
	default:
		return g.within(sMin, sMax)
	}
}

func (g *Generator) pickBrightness(entry dictionary.Entry, saturation int) int {
	bMin := entry.MinBrightness(saturation)
	bMax := brightnessMax

	switch g.opts.luminosity {
	case Bright:
		return g.within(max(bMin, bMax-brightBand), bMax)
	case Light:
		return g.within((bMin+bMax)/2, bMax-brightBand)
	case Dark:
		return g.within(bMin, min(bMin+darkBand, bMax))
	default:
		return g.within(bMin, bMax)
	}
}

func (g *Generator) pickAlpha() float64 {
	if g.opts.randomAlpha {
		return g.src.Float64()
	}
	return g.opts.Alpha()
}

// within returns a uniform integer in [lo, hi], swapping reversed bounds.
func (g *Generator) within(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + g.src.IntN(hi-lo+1)
}
