package datastore

import (
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/color-game/randomcolor/models"
)

// DailyColorMemory is an in-process DailyColorRepository, used when the
// service runs without Postgres (DB_TYPE=memory) and in tests.
type DailyColorMemory struct {
	mu     sync.Mutex
	nextID int
	byDate map[string]models.DailyColor
}

func NewDailyColorMemory() *DailyColorMemory {
	return &DailyColorMemory{nextID: 1, byDate: map[string]models.DailyColor{}}
}

func dateKey(t time.Time) string {
	return NormalizeDate(t).Format("2006-01-02")
}

func (m *DailyColorMemory) Create(dailyColor models.DailyColor) (models.DailyColor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dailyColor.ID = m.nextID
	m.nextID++
	m.byDate[dateKey(dailyColor.Date)] = dailyColor
	return dailyColor, nil
}

func (m *DailyColorMemory) GetByDate(date time.Time) (models.DailyColor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dailyColor, ok := m.byDate[dateKey(date)]
	if !ok {
		return models.DailyColor{}, NoRowsError{true, sql.ErrNoRows}
	}
	return dailyColor, nil
}

func (m *DailyColorMemory) GetToday() (models.DailyColor, error) {
	return m.GetByDate(time.Now())
}

func (m *DailyColorMemory) GetAll() ([]models.DailyColor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var dailyColors []models.DailyColor
	for _, dc := range m.byDate {
		dailyColors = append(dailyColors, dc)
	}
	sort.Slice(dailyColors, func(i, j int) bool {
		return dailyColors[i].Date.After(dailyColors[j].Date)
	})
	return dailyColors, nil
}

func (m *DailyColorMemory) Delete(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, dc := range m.byDate {
		if dc.ID == id {
			delete(m.byDate, key)
		}
	}
	return nil
}
