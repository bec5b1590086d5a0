package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/color-game/randomcolor/api"
	"github.com/color-game/randomcolor/datastore"
	"github.com/color-game/randomcolor/dictionary"
	"github.com/color-game/randomcolor/logging"
	"github.com/color-game/randomcolor/migrations"
	"github.com/color-game/randomcolor/randomcolor"
	"github.com/color-game/randomcolor/scheduler"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	logger := logging.New(appEnv)

	// Get configuration from environment
	config := api.Config{
		AppEnv:            appEnv,
		HTTPPort:          getEnv("HTTP_PORT", ":8080"),
		DatabaseType:      getEnv("DB_TYPE", "postgres"),
		DatabaseHost:      getEnv("DB_HOST", "localhost"),
		DatabaseUser:      getEnv("DB_USER", "postgres"),
		DatabasePassword:  getEnv("DB_PASSWORD", ""),
		DatabaseName:      getEnv("DB_NAME", "randomcolor"),
		SSLMode:           getEnv("SSL_MODE", "disable"),
		JwtSecret:         getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration: getEnvInt("JWT_ACCESS_DURATION", 900), // 15 minutes
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AllowedOrigins:    getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:           appEnv == "development",
	}

	hue, err := dictionary.ParseFamily(getEnv("DAILY_HUE", ""))
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid DAILY_HUE")
	}
	luminosity, err := randomcolor.ParseLuminosity(getEnv("DAILY_LUMINOSITY", ""))
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid DAILY_LUMINOSITY")
	}

	var dailyColorRepo datastore.DailyColorRepository
	if config.DatabaseType == "memory" {
		logger.Warn().Msg("using in-memory daily color store; history is lost on restart")
		dailyColorRepo = datastore.NewDailyColorMemory()
	} else {
		connStr := datastore.BuildDBConnStr(
			config.DatabaseHost,
			config.DatabasePassword,
			config.DatabaseUser,
			config.DatabaseName,
			config.SSLMode,
		)

		dbConn, err := datastore.NewDB(config.DatabaseType, connStr)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer dbConn.Close()

		logger.Info().Msg("running database migrations")
		if err := migrations.RunMigrations(dbConn, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to run migrations")
		}

		dailyColorRepo, err = datastore.NewDailyColorDatabase(dbConn)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create daily color repository")
		}
	}

	// Start scheduler for daily color generation
	colorScheduler := scheduler.NewScheduler(dailyColorRepo, scheduler.Config{
		Hue:        hue,
		Luminosity: luminosity,
		SeedSalt:   getEnv("DAILY_SEED_SALT", ""),
	}, logger)
	colorScheduler.Start()
	defer colorScheduler.Stop()

	app := &api.Application{
		Config:         config,
		DailyColorRepo: dailyColorRepo,
		DailyGenerator: colorScheduler,
		Logger:         logger,
	}

	if err := app.Serve(); err != nil {
		logger.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
