package scheduler

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/color-game/randomcolor/datastore"
	"github.com/color-game/randomcolor/dictionary"
	"github.com/color-game/randomcolor/models"
	"github.com/color-game/randomcolor/randomcolor"
)

type failingRepo struct {
	datastore.DailyColorRepository
}

func (failingRepo) GetByDate(time.Time) (models.DailyColor, error) {
	return models.DailyColor{}, errors.New("connection refused")
}

func TestGenerateDailyColorCreatesOnce(t *testing.T) {
	repo := datastore.NewDailyColorMemory()
	s := NewScheduler(repo, Config{Hue: dictionary.Green, Luminosity: randomcolor.Bright, SeedSalt: "test"}, zerolog.Nop())
	date := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

	created, isNew, err := s.GenerateDailyColor(date)
	if err != nil || !isNew {
		t.Fatalf("GenerateDailyColor() = %v, %v", isNew, err)
	}
	if created.Family != "green" || created.Luminosity != "bright" || created.ColorName != "bright green" {
		t.Fatalf("created = %+v", created)
	}
	if !created.Date.Equal(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date not normalized: %v", created.Date)
	}
	if created.Seed != strconv.FormatUint(DailySeed(date, "test"), 10) {
		t.Fatalf("seed = %q", created.Seed)
	}

	again, isNew, err := s.GenerateDailyColor(date.Add(5 * time.Hour))
	if err != nil || isNew {
		t.Fatalf("second GenerateDailyColor() = %v, %v", isNew, err)
	}
	if again.ID != created.ID {
		t.Fatalf("second call returned id %d, want %d", again.ID, created.ID)
	}
}

func TestDailyColorIsReproducible(t *testing.T) {
	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	cfg := Config{Luminosity: randomcolor.Light, SeedSalt: "salt"}

	a, _, _ := NewScheduler(datastore.NewDailyColorMemory(), cfg, zerolog.Nop()).GenerateDailyColor(date)
	b, _, _ := NewScheduler(datastore.NewDailyColorMemory(), cfg, zerolog.Nop()).GenerateDailyColor(date)

	if a.Hue != b.Hue || a.Saturation != b.Saturation || a.Brightness != b.Brightness || a.Family != b.Family {
		t.Fatalf("same day produced %+v and %+v", a, b)
	}
	if a.Family == "monochrome" {
		t.Fatal("random daily hue resolved to monochrome")
	}
}

func TestDailySeed(t *testing.T) {
	d := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	if DailySeed(d, "") != DailySeed(d.Add(23*time.Hour), "") {
		t.Fatal("seed changed within one day")
	}
	if DailySeed(d, "") == DailySeed(d.AddDate(0, 0, 1), "") {
		t.Fatal("consecutive days share a seed")
	}
	if DailySeed(d, "a") == DailySeed(d, "b") {
		t.Fatal("salt does not change the seed")
	}
}

func TestGenerateDailyColorPropagatesLookupErrors(t *testing.T) {
	s := NewScheduler(failingRepo{}, Config{}, zerolog.Nop())
	if _, _, err := s.GenerateDailyColor(time.Now()); err == nil {
		t.Fatal("GenerateDailyColor() swallowed a repository error")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s := NewScheduler(datastore.NewDailyColorMemory(), Config{}, zerolog.Nop())
	s.Start()
	s.Stop()
	s.Stop()
}
