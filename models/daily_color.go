package models

import (
	"time"

	"github.com/color-game/randomcolor/dictionary"
	"github.com/color-game/randomcolor/randomcolor"
)

// DailyColor represents the color of the day
type DailyColor struct {
	ID         int       `json:"id"`
	Date       time.Time `json:"date"`
	ColorName  string    `json:"color_name"`
	Family     string    `json:"family"`
	Luminosity string    `json:"luminosity"`
	Hue        int       `json:"hue"`
	Saturation int       `json:"saturation"`
	Brightness int       `json:"brightness"`
	R          int       `json:"r"`
	G          int       `json:"g"`
	B          int       `json:"b"`
	Seed       string    `json:"seed"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewDailyColor records a generated color for date. The seed is stored as a
// decimal string since Postgres has no unsigned 64-bit type.
func NewDailyColor(date time.Time, c randomcolor.Color, seed string) DailyColor {
	rgb := c.RGBArray()
	return DailyColor{
		Date:       date,
		ColorName:  c.Name(),
		Family:     c.Family.String(),
		Luminosity: c.Luminosity.String(),
		Hue:        c.Hue,
		Saturation: c.Saturation,
		Brightness: c.Brightness,
		R:          int(rgb[0]),
		G:          int(rgb[1]),
		B:          int(rgb[2]),
		Seed:       seed,
		CreatedAt:  time.Now(),
	}
}

// Color rebuilds the generated color from the stored HSB fields
func (dc DailyColor) Color() randomcolor.Color {
	family, _ := dictionary.ParseFamily(dc.Family)
	luminosity, _ := randomcolor.ParseLuminosity(dc.Luminosity)
	return randomcolor.Color{
		Hue:        dc.Hue,
		Saturation: dc.Saturation,
		Brightness: dc.Brightness,
		Alpha:      1,
		Family:     family,
		Luminosity: luminosity,
	}
}

// DailyColorResponse is the simplified response for API endpoints
type DailyColorResponse struct {
	Date      string `json:"date"`
	ColorName string `json:"color_name"`
	RGB       string `json:"rgb"`
	HSL       string `json:"hsl"`
	Hex       string `json:"hex"`
}

func (dc DailyColor) Response() DailyColorResponse {
	c := dc.Color()
	return DailyColorResponse{
		Date:      dc.Date.Format("2006-01-02"),
		ColorName: dc.ColorName,
		RGB:       c.RGBString(),
		HSL:       c.HSLString(),
		Hex:       c.Hex(),
	}
}
