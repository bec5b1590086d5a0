package randomcolor

import (
	"image/color"
	"testing"

	"github.com/color-game/randomcolor/dictionary"
)

func TestColorRepresentations(t *testing.T) {
	c := Color{Hue: 191, Saturation: 30, Brightness: 98, Alpha: 1, Family: dictionary.Blue, Luminosity: Light}

	if got := c.HSVArray(); got != [3]uint16{191, 30, 98} {
		t.Fatalf("HSVArray() = %v", got)
	}
	if got := c.RGBArray(); got != [3]uint8{175, 236, 250} {
		t.Fatalf("RGBArray() = %v", got)
	}
	if got := c.HSLArray(); got != [3]uint16{191, 88, 83} {
		t.Fatalf("HSLArray() = %v", got)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"rgb", c.RGBString(), "rgb(175, 236, 250)"},
		{"rgba", c.RGBAString(), "rgba(175, 236, 250, 1)"},
		{"hsl", c.HSLString(), "hsl(191, 88%, 83%)"},
		{"hsla", c.HSLAString(), "hsla(191, 88%, 83%, 1)"},
		{"hex", c.Hex(), "#afecfa"},
		{"name", c.Name(), "light blue"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestColorFormattingIsIdempotent(t *testing.T) {
	c := Color{Hue: 30, Saturation: 100, Brightness: 4, Alpha: 0.25, Family: dictionary.Orange}
	before := c

	hex := c.Hex()
	_ = c.HSLAString()
	_ = c.RGBAString()
	if c.Hex() != hex || c != before {
		t.Fatal("formatting changed the color")
	}
	if hex != "#0a0500" {
		t.Fatalf("Hex() = %q, want #0a0500", hex)
	}
	if got := c.Name(); got != "orange" {
		t.Fatalf("Name() = %q, want orange", got)
	}
}

func TestAlphaOutputs(t *testing.T) {
	c := Color{Hue: 191, Saturation: 30, Brightness: 98, Alpha: 0.69}

	if got := c.RGBAArray(); got != [4]uint8{175, 236, 250, 176} {
		t.Fatalf("RGBAArray() = %v", got)
	}
	if got := c.NRGBA(); got != (color.NRGBA{R: 175, G: 236, B: 250, A: 176}) {
		t.Fatalf("NRGBA() = %v", got)
	}
	if got := c.RGBAString(); got != "rgba(175, 236, 250, 0.69)" {
		t.Fatalf("RGBAString() = %q", got)
	}

	f := c.FloatRGBA()
	if f[0] != float32(175)/255 || f[3] != float32(0.69) {
		t.Fatalf("FloatRGBA() = %v", f)
	}
}

func TestColorfulAdapter(t *testing.T) {
	c := Color{Hue: 0, Saturation: 100, Brightness: 100, Alpha: 1}
	cf := c.Colorful()
	if cf.R != 1 || cf.G != 0 || cf.B != 0 {
		t.Fatalf("Colorful() = %+v, want pure red", cf)
	}
	if got := cf.Hex(); got != c.Hex() {
		t.Fatalf("Colorful().Hex() = %q, want %q", got, c.Hex())
	}
}

func TestParseHexRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "ff0000", "#gg0000", "#12"} {
		if _, err := ParseHex(in); err == nil {
			t.Fatalf("ParseHex(%q) returned no error", in)
		}
	}
	got, err := ParseHex("#abc")
	if err != nil || got != [3]uint8{170, 187, 204} {
		t.Fatalf("ParseHex(#abc) = %v, %v", got, err)
	}
}
