// Package colorspace converts between HSB, RGB and HSL and formats the
// results as CSS-style strings. All functions are pure.
package colorspace

import (
	"fmt"
	"math"
	"strconv"
)

// HSBToRGB converts hue in degrees, saturation and brightness in percent to
// 8-bit RGB channels, rounding to the nearest integer.
func HSBToRGB(hue, saturation, brightness int) [3]uint8 {
	s := float64(saturation) / 100
	v := float64(brightness) / 100

	if s == 0 {
		c := channel(v)
		return [3]uint8{c, c, c}
	}

	h := float64(((hue%360)+360)%360) / 60
	sector := math.Floor(h)
	f := h - sector
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(sector) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return [3]uint8{channel(r), channel(g), channel(b)}
}

func channel(x float64) uint8 {
	return uint8(math.Round(x * 255))
}

// RGBToHSL returns hue in degrees [0,360), saturation and lightness in
// percent.
func RGBToHSL(rgb [3]uint8) [3]uint16 {
	r := float64(rgb[0]) / 255
	g := float64(rgb[1]) / 255
	b := float64(rgb[2]) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return [3]uint16{0, 0, percent(l)}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	hue := uint16(math.Round(h*60)) % 360
	return [3]uint16{hue, percent(s), percent(l)}
}

func percent(x float64) uint16 {
	return uint16(math.Round(x * 100))
}

// Hex formats RGB channels as "#rrggbb" with lowercase digits.
func Hex(rgb [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

func RGBString(rgb [3]uint8) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb[0], rgb[1], rgb[2])
}

func RGBAString(rgb [3]uint8, alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb[0], rgb[1], rgb[2], FormatAlpha(alpha))
}

func HSLString(hsl [3]uint16) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl[0], hsl[1], hsl[2])
}

func HSLAString(hsl [3]uint16, alpha float64) string {
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", hsl[0], hsl[1], hsl[2], FormatAlpha(alpha))
}

// FormatAlpha prints alpha with the fewest digits that round-trip, so 1.0
// becomes "1" and 0.5 becomes "0.5".
func FormatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'f', -1, 64)
}
