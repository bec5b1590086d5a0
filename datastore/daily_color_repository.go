package datastore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/color-game/randomcolor/models"
)

type DailyColorRepository interface {
	Create(dailyColor models.DailyColor) (models.DailyColor, error)
	GetByDate(date time.Time) (models.DailyColor, error)
	GetToday() (models.DailyColor, error)
	GetAll() ([]models.DailyColor, error)
	Delete(id int) error
}

type DailyColorDatabase struct {
	database *sql.DB
}

func NewDailyColorDatabase(db *sql.DB) (DailyColorDatabase, error) {
	var dailyColorDB DailyColorDatabase
	dailyColorDB.database = db
	return dailyColorDB, nil
}

const dailyColorColumns = `id, date, color_name, family, luminosity, hue, saturation, brightness, r, g, b, seed, created_at`

// NormalizeDate truncates t to the start of its day in its own location
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func scanDailyColor(row interface{ Scan(...any) error }) (models.DailyColor, error) {
	var dc models.DailyColor
	err := row.Scan(
		&dc.ID,
		&dc.Date,
		&dc.ColorName,
		&dc.Family,
		&dc.Luminosity,
		&dc.Hue,
		&dc.Saturation,
		&dc.Brightness,
		&dc.R,
		&dc.G,
		&dc.B,
		&dc.Seed,
		&dc.CreatedAt,
	)
	return dc, err
}

// Create inserts a new daily color into the database
func (dcdb DailyColorDatabase) Create(dailyColor models.DailyColor) (models.DailyColor, error) {
	db := dcdb.database

	sqlStatement := `
		INSERT INTO daily_color (date, color_name, family, luminosity, hue, saturation, brightness, r, g, b, seed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := db.QueryRow(
		sqlStatement,
		dailyColor.Date,
		dailyColor.ColorName,
		dailyColor.Family,
		dailyColor.Luminosity,
		dailyColor.Hue,
		dailyColor.Saturation,
		dailyColor.Brightness,
		dailyColor.R,
		dailyColor.G,
		dailyColor.B,
		dailyColor.Seed,
		dailyColor.CreatedAt,
	).Scan(&dailyColor.ID)

	if err != nil {
		return models.DailyColor{}, fmt.Errorf("failed to create daily color: %v", err)
	}

	return dailyColor, nil
}

// GetByDate retrieves a daily color by date
func (dcdb DailyColorDatabase) GetByDate(date time.Time) (models.DailyColor, error) {
	db := dcdb.database

	sqlStatement := `SELECT ` + dailyColorColumns + ` FROM daily_color WHERE date = $1`

	dailyColor, err := scanDailyColor(db.QueryRow(sqlStatement, NormalizeDate(date)))

	switch err {
	case sql.ErrNoRows:
		return models.DailyColor{}, NoRowsError{true, err}
	case nil:
		return dailyColor, nil
	default:
		return models.DailyColor{}, err
	}
}

// GetToday retrieves today's daily color
func (dcdb DailyColorDatabase) GetToday() (models.DailyColor, error) {
	return dcdb.GetByDate(time.Now())
}

// GetAll retrieves all daily colors, newest first
func (dcdb DailyColorDatabase) GetAll() ([]models.DailyColor, error) {
	db := dcdb.database

	sqlStatement := `SELECT ` + dailyColorColumns + ` FROM daily_color ORDER BY date DESC`

	rows, err := db.Query(sqlStatement)
	if err != nil {
		return []models.DailyColor{}, err
	}
	defer rows.Close()

	var dailyColors []models.DailyColor
	for rows.Next() {
		dc, err := scanDailyColor(rows)
		if err != nil {
			return []models.DailyColor{}, err
		}
		dailyColors = append(dailyColors, dc)
	}

	if err = rows.Err(); err != nil {
		return []models.DailyColor{}, err
	}

	return dailyColors, nil
}

// Delete removes a daily color by ID
func (dcdb DailyColorDatabase) Delete(id int) error {
	db := dcdb.database

	sqlStatement := `DELETE FROM daily_color WHERE id = $1`
	_, err := db.Exec(sqlStatement, id)

	return err
}
