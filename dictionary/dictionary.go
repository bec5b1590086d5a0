package dictionary

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Family is a named hue family. Random is a selection instruction, not a
// table entry: it must be resolved to a concrete family before Lookup.
type Family uint8

const (
	Random Family = iota
	Monochrome
	Red
	Orange
	Yellow
	Green
	Blue
	Purple
	Pink
)

var ErrUnknownFamily = errors.New("unknown hue family")

var familyNames = map[Family]string{
	Random:     "random",
	Monochrome: "monochrome",
	Red:        "red",
	Orange:     "orange",
	Yellow:     "yellow",
	Green:      "green",
	Blue:       "blue",
	Purple:     "purple",
	Pink:       "pink",
}

// Chromatic lists the families a Random hue selection draws from, in table order.
var Chromatic = []Family{Red, Orange, Yellow, Green, Blue, Purple, Pink}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("family(%d)", uint8(f))
}

// ParseFamily maps a case-insensitive family name to its Family.
// An empty string selects Random.
func ParseFamily(name string) (Family, error) {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	if cleaned == "" {
		return Random, nil
	}
	for family, familyName := range familyNames {
		if familyName == cleaned {
			return family, nil
		}
	}
	return Random, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// Bound is one breakpoint of a lower-bound curve: at saturation S the
// brightness must be at least V.
type Bound struct {
	S int
	V int
}

// Entry describes the valid hue/saturation/brightness region of one family.
type Entry struct {
	Family Family
	// HueRange is inclusive; the lower end may be negative for families
	// that wrap through 0 degrees.
	HueRange    [2]int
	LowerBounds []Bound
}

// SaturationRange is the span covered by the lower-bound curve.
func (e Entry) SaturationRange() (int, int) {
	return e.LowerBounds[0].S, e.LowerBounds[len(e.LowerBounds)-1].S
}

// BrightnessRange is the span of brightness floors along the curve,
// lowest first.
func (e Entry) BrightnessRange() (int, int) {
	return e.LowerBounds[len(e.LowerBounds)-1].V, e.LowerBounds[0].V
}

// ContainsHue reports whether hue (in [0,360)) lies inside the family's range,
// accounting for ranges that start below zero.
func (e Entry) ContainsHue(hue int) bool {
	lo, hi := e.HueRange[0], e.HueRange[1]
	if hue >= lo && hue <= hi {
		return true
	}
	return lo < 0 && hue-360 >= lo && hue-360 <= hi
}

// MinBrightness returns the brightness floor for a saturation, linearly
// interpolated between the two breakpoints that bracket it.
func (e Entry) MinBrightness(saturation int) int {
	for i := 0; i < len(e.LowerBounds)-1; i++ {
		s1, v1 := e.LowerBounds[i].S, e.LowerBounds[i].V
		s2, v2 := e.LowerBounds[i+1].S, e.LowerBounds[i+1].V

		if saturation >= s1 && saturation <= s2 {
			m := float64(v2-v1) / float64(s2-s1)
			b := float64(v1) - m*float64(s1)
			return int(math.Round(m*float64(saturation) + b))
		}
	}
	return 0
}

var table = map[Family]Entry{
	Monochrome: {
		Family:      Monochrome,
		HueRange:    [2]int{0, 0},
		LowerBounds: []Bound{{0, 0}, {100, 0}},
	},
	Red: {
		Family:   Red,
		HueRange: [2]int{-26, 18},
		LowerBounds: []Bound{
			{20, 100}, {30, 92}, {40, 89}, {50, 85}, {60, 78},
			{70, 70}, {80, 60}, {90, 55}, {100, 50},
		},
	},
	Orange: {
		Family:   Orange,
		HueRange: [2]int{19, 46},
		LowerBounds: []Bound{
			{20, 100}, {30, 93}, {40, 88}, {50, 86}, {60, 85}, {70, 70}, {100, 70},
		},
	},
	Yellow: {
		Family:   Yellow,
		HueRange: [2]int{47, 62},
		LowerBounds: []Bound{
			{25, 100}, {40, 94}, {50, 89}, {60, 86}, {70, 84}, {80, 82}, {90, 80}, {100, 75},
		},
	},
	Green: {
		Family:   Green,
		HueRange: [2]int{63, 178},
		LowerBounds: []Bound{
			{30, 100}, {40, 90}, {50, 85}, {60, 81}, {70, 74}, {80, 64}, {90, 50}, {100, 40},
		},
	},
	Blue: {
		Family:   Blue,
		HueRange: [2]int{179, 257},
		LowerBounds: []Bound{
			{20, 100}, {30, 86}, {40, 80}, {50, 74}, {60, 60},
			{70, 52}, {80, 44}, {90, 39}, {100, 35},
		},
	},
	Purple: {
		Family:   Purple,
		HueRange: [2]int{258, 282},
		LowerBounds: []Bound{
			{20, 100}, {30, 87}, {40, 79}, {50, 70}, {60, 65},
			{70, 59}, {80, 52}, {90, 45}, {100, 42},
		},
	},
	Pink: {
		Family:   Pink,
		HueRange: [2]int{283, 334},
		LowerBounds: []Bound{
			{20, 100}, {30, 90}, {40, 86}, {60, 84}, {80, 80}, {90, 75}, {100, 73},
		},
	},
}

// Lookup returns the table entry for a concrete family. Asking for Random or
// an undefined family is a programming error and panics.
func Lookup(family Family) Entry {
	entry, ok := table[family]
	if !ok {
		panic(fmt.Sprintf("dictionary: no entry for %v", family))
	}
	return entry
}

// ForHue returns the chromatic family whose range contains hue, in table
// order. Monochrome is never returned since its range is a single point
// shared with red.
func ForHue(hue int) Entry {
	for _, family := range Chromatic {
		if entry := table[family]; entry.ContainsHue(hue) {
			return entry
		}
	}
	// every hue in [0,360) is covered above
	return table[Red]
}

// Entries returns every table entry, Monochrome first then the chromatic
// families in hue order.
func Entries() []Entry {
	entries := []Entry{table[Monochrome]}
	for _, family := range Chromatic {
		entries = append(entries, table[family])
	}
	return entries
}
