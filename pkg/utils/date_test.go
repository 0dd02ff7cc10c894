package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 20, 18, 45, 0, 0, loc)

	tests := []struct {
		name     string
		target   time.Time
		expected int
	}{
		{name: "Mesmo dia com horário anterior", target: time.Date(2024, 3, 20, 0, 0, 0, 0, loc), expected: 0},
		{name: "Dia seguinte", target: time.Date(2024, 3, 21, 0, 0, 0, 0, loc), expected: 1},
		{name: "Dez dias à frente", target: time.Date(2024, 3, 30, 0, 0, 0, 0, loc), expected: 10},
		{name: "Data já vencida", target: time.Date(2024, 3, 17, 0, 0, 0, 0, loc), expected: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(now, tt.target))
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, time.May, date.Month())
	assert.Equal(t, 10, date.Day())

	_, err = ParseDate("10/05/2024")
	assert.Error(t, err)

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 3.46, RoundWithTwoDecimalPlace(3.456))
	assert.Equal(t, 66.7, RoundWithOneDecimalPlace(66.6666))
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 75.0, Percentage(3, 4))
}
