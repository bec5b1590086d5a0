package randomcolor

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/color-game/randomcolor/colorspace"
	"github.com/color-game/randomcolor/dictionary"
)

// Color is a generated color in HSB with alpha. Every other representation
// is derived from these fields on request.
type Color struct {
	Hue        int
	Saturation int
	Brightness int
	Alpha      float64

	Family     dictionary.Family
	Luminosity Luminosity
}

// HSVArray returns hue in degrees, saturation and brightness in percent.
func (c Color) HSVArray() [3]uint16 {
	return [3]uint16{uint16(c.Hue), uint16(c.Saturation), uint16(c.Brightness)}
}

func (c Color) RGBArray() [3]uint8 {
	return colorspace.HSBToRGB(c.Hue, c.Saturation, c.Brightness)
}

// RGBAArray appends alpha scaled to 0-255.
func (c Color) RGBAArray() [4]uint8 {
	rgb := c.RGBArray()
	return [4]uint8{rgb[0], rgb[1], rgb[2], uint8(math.Round(c.Alpha * 255))}
}

// FloatRGBA returns every channel scaled to [0,1].
func (c Color) FloatRGBA() [4]float32 {
	rgb := c.RGBArray()
	return [4]float32{
		float32(rgb[0]) / 255,
		float32(rgb[1]) / 255,
		float32(rgb[2]) / 255,
		float32(c.Alpha),
	}
}

func (c Color) RGBString() string {
	return colorspace.RGBString(c.RGBArray())
}

func (c Color) RGBAString() string {
	return colorspace.RGBAString(c.RGBArray(), c.Alpha)
}

func (c Color) HSLArray() [3]uint16 {
	return colorspace.RGBToHSL(c.RGBArray())
}

func (c Color) HSLString() string {
	return colorspace.HSLString(c.HSLArray())
}

func (c Color) HSLAString() string {
	return colorspace.HSLAString(c.HSLArray(), c.Alpha)
}

// Hex returns "#rrggbb" in lowercase.
func (c Color) Hex() string {
	return colorspace.Hex(c.RGBArray())
}

// Name describes the color by luminosity and family, e.g. "dark blue".
func (c Color) Name() string {
	if c.Luminosity == LuminosityRandom {
		return c.Family.String()
	}
	return fmt.Sprintf("%s %s", c.Luminosity, c.Family)
}

func (c Color) String() string {
	return c.Hex()
}

// Colorful converts to a go-colorful color. Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	rgb := c.RGBArray()
	return colorful.Color{
		R: float64(rgb[0]) / 255,
		G: float64(rgb[1]) / 255,
		B: float64(rgb[2]) / 255,
	}
}

// NRGBA converts to a non-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	rgba := c.RGBAArray()
	return color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}

// ParseHex reads "#rrggbb" or "#rgb" back into RGB channels.
func ParseHex(hex string) ([3]uint8, error) {
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return [3]uint8{}, fmt.Errorf("parse hex %q: %w", hex, err)
	}
	r, g, b := parsed.RGB255()
	return [3]uint8{r, g, b}, nil
}
