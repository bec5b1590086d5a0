package models

import (
	"testing"
	"time"

	"github.com/color-game/randomcolor/dictionary"
	"github.com/color-game/randomcolor/randomcolor"
)

func TestNewColor(t *testing.T) {
	c := randomcolor.Color{Hue: 191, Saturation: 30, Brightness: 98, Alpha: 1, Family: dictionary.Blue, Luminosity: randomcolor.Light}
	view := NewColor(c)

	if view.Hex.Value != "#afecfa" || view.Hex.Clean != "afecfa" {
		t.Fatalf("Hex = %+v", view.Hex)
	}
	if view.RGB.R != 175 || view.RGB.G != 236 || view.RGB.B != 250 {
		t.Fatalf("RGB = %+v", view.RGB)
	}
	if view.HSL.Value != "hsl(191, 88%, 83%)" {
		t.Fatalf("HSL.Value = %q", view.HSL.Value)
	}
	if view.HSV.Value != "hsv(191, 30%, 98%)" {
		t.Fatalf("HSV.Value = %q", view.HSV.Value)
	}
	if view.Name.Value != "light blue" || view.Family != "blue" || view.Luminosity != "light" {
		t.Fatalf("naming = %q %q %q", view.Name.Value, view.Family, view.Luminosity)
	}
	if view.RGB.Fraction.R != 175.0/255 {
		t.Fatalf("RGB.Fraction.R = %v", view.RGB.Fraction.R)
	}
}

func TestDailyColorRoundTrip(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	c := randomcolor.Color{Hue: 300, Saturation: 50, Brightness: 50, Alpha: 1, Family: dictionary.Pink, Luminosity: randomcolor.Dark}

	dc := NewDailyColor(date, c, "12345")
	if dc.R != 128 || dc.G != 64 || dc.B != 128 {
		t.Fatalf("rgb = %d,%d,%d", dc.R, dc.G, dc.B)
	}
	if got := dc.Color(); got != c {
		t.Fatalf("Color() = %+v, want %+v", got, c)
	}

	resp := dc.Response()
	want := DailyColorResponse{
		Date:      "2026-10-15",
		ColorName: "dark pink",
		RGB:       "rgb(128, 64, 128)",
		HSL:       "hsl(300, 33%, 38%)",
		Hex:       "#804080",
	}
	if resp != want {
		t.Fatalf("Response() = %+v, want %+v", resp, want)
	}
}

func TestAdminToken(t *testing.T) {
	token, err := NewAdminToken("secret", time.Minute)
	if err != nil {
		t.Fatalf("NewAdminToken() error: %v", err)
	}

	claims, err := ValidateJWTToken(token.Token, "secret")
	if err != nil {
		t.Fatalf("ValidateJWTToken() error: %v", err)
	}
	if claims.Scope != AdminScope {
		t.Fatalf("Scope = %q, want %q", claims.Scope, AdminScope)
	}

	if _, err := ValidateJWTToken(token.Token, "other"); err == nil {
		t.Fatal("token validated with the wrong secret")
	}

	expired, _ := NewAdminToken("secret", -time.Minute)
	if _, err := ValidateJWTToken(expired.Token, "secret"); err == nil {
		t.Fatal("expired token validated")
	}
}
