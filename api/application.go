package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/color-game/randomcolor/datastore"
	"github.com/color-game/randomcolor/models"
)

type Config struct {
	AppEnv            string
	HTTPPort          string
	DatabaseType      string
	DatabaseHost      string
	DatabaseUser      string
	DatabasePassword  string
	DatabaseName      string
	SSLMode           string
	JwtSecret         string
	JwtAccessDuration int // seconds
	AdminPasswordHash string
	AllowedOrigins    []string
	DevMode           bool
}

// DailyColorGenerator creates the color of the day on demand
type DailyColorGenerator interface {
	GenerateDailyColor(date time.Time) (models.DailyColor, bool, error)
}

type Application struct {
	Config         Config
	DailyColorRepo datastore.DailyColorRepository
	DailyGenerator DailyColorGenerator
	Logger         zerolog.Logger
}
