package pricing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"strompreis/internal/models"
	"strompreis/internal/pricing"
)

// recordingFetch returns a FetchFunc serving one generated point per hour in
// the requested range and records every call it receives.
func recordingFetch(calls *[][2]time.Time) pricing.FetchFunc {
	return func(ctx context.Context, start, end time.Time) ([]models.PricePoint, error) {
		*calls = append(*calls, [2]time.Time{start, end})
		var points []models.PricePoint
		for t := start; t.Before(end); t = t.Add(time.Hour) {
			points = append(points, models.PricePoint{Timestamp: t.UTC(), Price: 50})
		}
		return points, nil
	}
}

func TestComposer_Compose(t *testing.T) {
	loc := vienna(t)

	tests := []struct {
		name         string
		date         string
		wantPrevious int
		wantSelected int
		wantNext     int
	}{
		{name: "NormalDay", date: "2025-06-15", wantPrevious: 24, wantSelected: 24, wantNext: 24},
		{name: "SpringForward", date: "2025-03-30", wantPrevious: 24, wantSelected: 23, wantNext: 24},
		{name: "FallBack", date: "2025-10-26", wantPrevious: 24, wantSelected: 25, wantNext: 24},
		{name: "DayBeforeSpringForward", date: "2025-03-29", wantPrevious: 24, wantSelected: 24, wantNext: 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := time.ParseInLocation("2006-01-02", tt.date, loc)
			require.NoError(t, err)

			var calls [][2]time.Time
			composer := pricing.NewComposer(loc, recordingFetch(&calls))

			result, err := composer.Compose(context.Background(), date)
			require.NoError(t, err)

			require.Equal(t, tt.wantPrevious, result.PreviousDay.TotalHours)
			require.Equal(t, tt.wantSelected, result.SelectedDay.TotalHours)
			require.Equal(t, tt.wantNext, result.NextDay.TotalHours)

			// Neighbour dates are calendar days, not 24-hour offsets.
			require.Equal(t, date.AddDate(0, 0, -1).Format("2006-01-02"), result.PreviousDay.Date)
			require.Equal(t, tt.date, result.SelectedDay.Date)
			require.Equal(t, date.AddDate(0, 0, 1).Format("2006-01-02"), result.NextDay.Date)

			// All data came from one batched upstream call covering the
			// three local days exactly.
			require.Len(t, calls, 1)
			wantStart := time.Date(date.Year(), date.Month(), date.Day()-1, 0, 0, 0, 0, loc)
			wantEnd := time.Date(date.Year(), date.Month(), date.Day()+2, 0, 0, 0, 0, loc)
			require.True(t, calls[0][0].Equal(wantStart))
			require.True(t, calls[0][1].Equal(wantEnd))

			// With full upstream coverage nothing is missing.
			require.Equal(t, 0, result.PreviousDay.MissingHours)
			require.Equal(t, 0, result.SelectedDay.MissingHours)
			require.Equal(t, 0, result.NextDay.MissingHours)
		})
	}
}

func TestComposer_FetchFailure(t *testing.T) {
	loc := vienna(t)
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, loc)

	composer := pricing.NewComposer(loc, func(ctx context.Context, start, end time.Time) ([]models.PricePoint, error) {
		return nil, errors.New("connection refused")
	})

	_, err := composer.Compose(context.Background(), date)
	require.Error(t, err)
	require.True(t, errors.Is(err, pricing.ErrDataUnavailable))
}

func TestComposer_EmptyUpstreamIsNotAnError(t *testing.T) {
	loc := vienna(t)
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, loc)

	composer := pricing.NewComposer(loc, func(ctx context.Context, start, end time.Time) ([]models.PricePoint, error) {
		return nil, nil
	})

	result, err := composer.Compose(context.Background(), date)
	require.NoError(t, err)

	for _, grid := range []models.DayGrid{result.PreviousDay, result.SelectedDay, result.NextDay} {
		require.Equal(t, grid.TotalHours, grid.MissingHours)
		require.NotZero(t, grid.TotalHours)
	}
}

func TestComposer_PartialData(t *testing.T) {
	loc := vienna(t)
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, loc)

	// Upstream has published the previous and selected day but not the
	// next day yet, the usual morning shape.
	cutoff := time.Date(2025, 6, 16, 0, 0, 0, 0, loc)
	composer := pricing.NewComposer(loc, func(ctx context.Context, start, end time.Time) ([]models.PricePoint, error) {
		var points []models.PricePoint
		for t := start; t.Before(cutoff); t = t.Add(time.Hour) {
			points = append(points, models.PricePoint{Timestamp: t.UTC(), Price: 61.3})
		}
		return points, nil
	})

	result, err := composer.Compose(context.Background(), date)
	require.NoError(t, err)

	require.Equal(t, 0, result.PreviousDay.MissingHours)
	require.Equal(t, 0, result.SelectedDay.MissingHours)
	require.Equal(t, result.NextDay.TotalHours, result.NextDay.MissingHours)
}
