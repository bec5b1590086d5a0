package models

import (
	"fmt"

	"github.com/color-game/randomcolor/randomcolor"
)

// Color is the JSON view of a generated color
type Color struct {
	Hex        ColorHex  `json:"hex"`
	RGB        ColorRGB  `json:"rgb"`
	RGBA       string    `json:"rgba"`
	HSL        ColorHSL  `json:"hsl"`
	HSLA       string    `json:"hsla"`
	HSV        ColorHSV  `json:"hsv"`
	Alpha      float64   `json:"alpha"`
	Name       ColorName `json:"name"`
	Family     string    `json:"family"`
	Luminosity string    `json:"luminosity"`
}

type ColorHex struct {
	Value string `json:"value"`
	Clean string `json:"clean"`
}

type ColorRGB struct {
	Fraction Fraction `json:"fraction"`
	R        int      `json:"r"`
	G        int      `json:"g"`
	B        int      `json:"b"`
	Value    string   `json:"value"`
}

type Fraction struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type ColorHSL struct {
	H     int    `json:"h"`
	S     int    `json:"s"`
	L     int    `json:"l"`
	Value string `json:"value"`
}

type ColorHSV struct {
	H     int    `json:"h"`
	S     int    `json:"s"`
	V     int    `json:"v"`
	Value string `json:"value"`
}

type ColorName struct {
	Value string `json:"value"`
}

// NewColor builds the JSON view of c
func NewColor(c randomcolor.Color) Color {
	hex := c.Hex()
	rgb := c.RGBArray()
	hsl := c.HSLArray()
	hsv := c.HSVArray()
	cf := c.Colorful()

	return Color{
		Hex: ColorHex{Value: hex, Clean: hex[1:]},
		RGB: ColorRGB{
			Fraction: Fraction{R: cf.R, G: cf.G, B: cf.B},
			R:        int(rgb[0]),
			G:        int(rgb[1]),
			B:        int(rgb[2]),
			Value:    c.RGBString(),
		},
		RGBA: c.RGBAString(),
		HSL: ColorHSL{
			H:     int(hsl[0]),
			S:     int(hsl[1]),
			L:     int(hsl[2]),
			Value: c.HSLString(),
		},
		HSLA: c.HSLAString(),
		HSV: ColorHSV{
			H:     int(hsv[0]),
			S:     int(hsv[1]),
			V:     int(hsv[2]),
			Value: fmt.Sprintf("hsv(%d, %d%%, %d%%)", hsv[0], hsv[1], hsv[2]),
		},
		Alpha:      c.Alpha,
		Name:       ColorName{Value: c.Name()},
		Family:     c.Family.String(),
		Luminosity: c.Luminosity.String(),
	}
}

// FamilyInfo describes one entry of the color dictionary
type FamilyInfo struct {
	Name            string `json:"name"`
	HueRange        [2]int `json:"hue_range"`
	SaturationRange [2]int `json:"saturation_range"`
	BrightnessRange [2]int `json:"brightness_range"`
}
