package pricing

import (
	"context"
	"fmt"
	"time"

	"strompreis/internal/models"
)

// FetchFunc supplies raw upstream price points for a UTC time range,
// start inclusive, end exclusive. It may return fewer points than hours in
// the range; that is the normal shape of not-yet-published data.
type FetchFunc func(ctx context.Context, start, end time.Time) ([]models.PricePoint, error)

// Composer assembles the three-day price window for a selected date.
type Composer struct {
	loc   *time.Location
	fetch FetchFunc
}

// NewComposer creates a Composer for the given market timezone and fetch
// collaborator.
func NewComposer(loc *time.Location, fetch FetchFunc) *Composer {
	return &Composer{loc: loc, fetch: fetch}
}

// Compose builds the grids for the day before, the selected day and the day
// after. Neighbour dates use calendar arithmetic so DST-transition days keep
// their 23/25-hour shape. The upstream is asked once for the minimal UTC
// range covering all three days; the returned points are joined against each
// day's expected instants by exact UTC instant.
//
// A fetch failure surfaces as ErrDataUnavailable. An empty fetch result is
// not an error and yields fully-missing grids.
func (c *Composer) Compose(ctx context.Context, date time.Time) (models.ThreeDayResult, error) {
	days := [3]time.Time{date.AddDate(0, 0, -1), date, date.AddDate(0, 0, 1)}

	var instants [3][]time.Time
	for i, day := range days {
		hs, err := HourStarts(day, c.loc)
		if err != nil {
			return models.ThreeDayResult{}, err
		}
		instants[i] = hs
	}

	start := instants[0][0]
	end := instants[2][len(instants[2])-1].Add(time.Hour)

	points, err := c.fetch(ctx, start, end)
	if err != nil {
		return models.ThreeDayResult{}, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	prices := make(map[int64]float64, len(points))
	for _, p := range points {
		prices[p.Timestamp.UnixMilli()] = p.Price
	}

	return models.ThreeDayResult{
		PreviousDay: BuildGrid(days[0], instants[0], prices, c.loc),
		SelectedDay: BuildGrid(days[1], instants[1], prices, c.loc),
		NextDay:     BuildGrid(days[2], instants[2], prices, c.loc),
	}, nil
}
