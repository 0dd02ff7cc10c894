package utils

import (
	"math"
	"time"
)

const (
	DateLayout   = "2006-01-02"
	DateBRLayout = "02/01/2006"
	TimeLayout   = "15:04"

	DateTimeLayout = "2006-01-02 15:04"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// TruncateToDay zera o horário mantendo o fuso de t
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween conta dias de calendário entre from e to, ignorando o horário
func DaysBetween(from, to time.Time) int {
	f := TruncateToDay(from)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, from.Location())
	return int(math.Round(t.Sub(f).Hours() / 24))
}
