package pricing_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"strompreis/internal/pricing"
)

func vienna(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Vienna")
	require.NoError(t, err)
	return loc
}

func TestHourStarts_DSTTransitions(t *testing.T) {
	loc := vienna(t)

	tests := []struct {
		name      string
		date      string
		wantHours int
	}{
		{name: "NormalWinterDay", date: "2025-01-15", wantHours: 24},
		{name: "NormalSummerDay", date: "2025-06-15", wantHours: 24},
		{name: "DayBeforeSpringForward", date: "2025-03-29", wantHours: 24},
		{name: "SpringForward", date: "2025-03-30", wantHours: 23},
		{name: "DayAfterSpringForward", date: "2025-03-31", wantHours: 24},
		{name: "DayBeforeFallBack", date: "2025-10-25", wantHours: 24},
		{name: "FallBack", date: "2025-10-26", wantHours: 25},
		{name: "DayAfterFallBack", date: "2025-10-27", wantHours: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := time.ParseInLocation("2006-01-02", tt.date, loc)
			require.NoError(t, err)

			instants, err := pricing.HourStarts(date, loc)
			require.NoError(t, err)
			require.Len(t, instants, tt.wantHours)

			// First instant is local midnight of the requested date.
			require.True(t, date.Equal(instants[0]))

			// Consecutive instants are exactly one hour apart in UTC,
			// regardless of what the wall clock does.
			for i := 1; i < len(instants); i++ {
				require.Equal(t, time.Hour, instants[i].Sub(instants[i-1]))
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	loc := vienna(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, loc)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Valid", input: "2025-10-26"},
		{name: "ValidPast", input: "2024-07-01"},
		{name: "ValidFuture", input: "2026-06-01"},
		{name: "Error_Malformed", input: "26.10.2025", wantErr: true},
		{name: "Error_NotACalendarDate", input: "2025-13-40", wantErr: true},
		{name: "Error_TooFarFuture", input: "2026-07-01", wantErr: true},
		{name: "Error_TooFarPast", input: "2024-06-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := pricing.ParseDate(tt.input, loc, now)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, pricing.ErrInvalidDate))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.input, date.Format("2006-01-02"))
			require.Equal(t, loc, date.Location())
		})
	}
}
