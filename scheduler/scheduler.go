package scheduler

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/color-game/randomcolor/datastore"
	"github.com/color-game/randomcolor/dictionary"
	"github.com/color-game/randomcolor/models"
	"github.com/color-game/randomcolor/randomcolor"
)

// Config selects what kind of color is generated each day
type Config struct {
	Hue        dictionary.Family
	Luminosity randomcolor.Luminosity
	// SeedSalt is mixed into each day's seed so separate deployments get
	// different sequences.
	SeedSalt string
}

type Scheduler struct {
	DailyColorRepo datastore.DailyColorRepository
	Config         Config

	logger   zerolog.Logger
	timer    *time.Timer
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
}

func NewScheduler(repo datastore.DailyColorRepository, cfg Config, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		DailyColorRepo: repo,
		Config:         cfg,
		logger:         logger.With().Str("component", "scheduler").Logger(),
		done:           make(chan struct{}),
	}
}

// DailySeed derives the generation seed for the calendar day of date
func DailySeed(date time.Time, salt string) uint64 {
	return randomcolor.HashSeed(salt + date.Format("2006-01-02"))
}

// Start generates today's color if missing, then runs at midnight every day
func (s *Scheduler) Start() {
	if _, _, err := s.GenerateDailyColor(time.Now()); err != nil {
		s.logger.Error().Err(err).Msg("failed to generate today's color on start")
	}

	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	s.logger.Info().Dur("until", durationUntilMidnight).Msg("scheduler started")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = time.AfterFunc(durationUntilMidnight, func() {
		s.runAndLog()

		s.mu.Lock()
		select {
		case <-s.done:
			s.mu.Unlock()
			return
		default:
		}
		s.ticker = time.NewTicker(24 * time.Hour)
		ticker := s.ticker
		s.mu.Unlock()

		go func() {
			for {
				select {
				case <-ticker.C:
					s.runAndLog()
				case <-s.done:
					return
				}
			}
		}()
	})
}

// Stop stops the scheduler; calling it more than once is harmless
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
		}
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
		s.mu.Unlock()
		s.logger.Info().Msg("scheduler stopped")
	})
}

func (s *Scheduler) runAndLog() {
	if _, _, err := s.GenerateDailyColor(time.Now()); err != nil {
		s.logger.Error().Err(err).Msg("failed to generate daily color")
	}
}

// GenerateDailyColor creates the color for date's day unless one exists.
// The returned bool reports whether a new color was stored.
func (s *Scheduler) GenerateDailyColor(date time.Time) (models.DailyColor, bool, error) {
	day := datastore.NormalizeDate(date)
	dayLogger := s.logger.With().Str("date", day.Format("2006-01-02")).Logger()

	existingColor, err := s.DailyColorRepo.GetByDate(day)
	if err == nil && existingColor.ID != 0 {
		dayLogger.Debug().Str("color", existingColor.ColorName).Msg("daily color already exists")
		return existingColor, false, nil
	}
	var noRows datastore.NoRowsError
	if err != nil && !errors.As(err, &noRows) {
		return models.DailyColor{}, false, fmt.Errorf("failed to look up daily color: %w", err)
	}

	seed := DailySeed(day, s.Config.SeedSalt)
	opts, err := randomcolor.NewBuilder().
		Hue(s.Config.Hue).
		Luminosity(s.Config.Luminosity).
		Seed(seed).
		Build()
	if err != nil {
		return models.DailyColor{}, false, err
	}

	color := randomcolor.Generate(opts)
	savedColor, err := s.DailyColorRepo.Create(models.NewDailyColor(day, color, strconv.FormatUint(seed, 10)))
	if err != nil {
		return models.DailyColor{}, false, err
	}

	dayLogger.Info().
		Str("color", savedColor.ColorName).
		Str("hex", color.Hex()).
		Msg("generated daily color")

	return savedColor, true, nil
}
