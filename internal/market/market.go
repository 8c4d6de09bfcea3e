// Package market handles fetching day-ahead prices from the upstream
// exchange and the caching and scheduling around it.
package market

import (
	"context"
	"time"

	"strompreis/internal/models"
)

// Fetcher supplies raw price points for a UTC time range, start inclusive,
// end exclusive. Implementations may return fewer points than hours in the
// range; missing hours are a normal non-error state.
type Fetcher interface {
	FetchRange(ctx context.Context, start, end time.Time) ([]models.PricePoint, error)
}
