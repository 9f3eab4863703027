package models

import (
	"fmt"
	"strings"
	"time"
)

// ============================================================
// Calendar Date
// ============================================================

const (
	// DateLayout — формат дат во входных данных и в JSON (MM/DD/YYYY).
	DateLayout    = "01/02/2006"
	storageLayout = "2006-01-02"
)

// Date — календарная дата без времени суток, всегда в UTC.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate разбирает MM/DD/YYYY.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("date %q must be MM/DD/YYYY", s)
	}
	return Date{t}, nil
}

// ParseStorageDate разбирает значение из колонки БД (YYYY-MM-DD).
func ParseStorageDate(s string) (Date, error) {
	t, err := time.Parse(storageLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("stored date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) StorageValue() string {
	return d.Format(storageLayout)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}
