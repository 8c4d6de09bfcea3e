// Package pricing normalizes raw UTC-stamped day-ahead prices into
// timezone-correct hourly day grids and derives statistics and exports.
package pricing

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format accepted by the API.
const DateLayout = "2006-01-02"

// maxDateOffsetDays bounds the supported date window around today.
// Upstream publishes roughly one year of history and one day ahead.
const maxDateOffsetDays = 366

// ParseDate parses a YYYY-MM-DD string as a calendar date in loc and
// verifies it falls within the supported window around now. The returned
// time is local midnight of that date.
func ParseDate(s string, loc *time.Location, now time.Time) (time.Time, error) {
	parsed, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}

	y, m, d := now.In(loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	if parsed.After(today.AddDate(0, 0, maxDateOffsetDays)) {
		return time.Time{}, fmt.Errorf("%w: %s is more than a year in the future", ErrInvalidDate, s)
	}
	if parsed.Before(today.AddDate(0, 0, -maxDateOffsetDays)) {
		return time.Time{}, fmt.Errorf("%w: %s is more than a year in the past", ErrInvalidDate, s)
	}
	return parsed, nil
}

// HourStarts returns the UTC instants of every local hour start between the
// date's local midnight (inclusive) and the next local midnight (exclusive).
// Normal days yield 24 instants, spring-forward days 23 (the skipped wall
// hour never existed and produces no instant), fall-back days 25 (the
// repeated wall hour produces two instants one hour apart in UTC).
func HourStarts(date time.Time, loc *time.Location) ([]time.Time, error) {
	y, m, d := date.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d+1, 0, 0, 0, 0, loc)

	instants := make([]time.Time, 0, 25)
	for t := start; t.Before(end); t = t.Add(time.Hour) {
		instants = append(instants, t)
	}
	if len(instants) == 0 {
		// Cannot happen with sane timezone rules; an empty day means the
		// date arithmetic above is broken.
		return nil, fmt.Errorf("timezone rules for %s produced an empty day on %s", loc, start.Format(DateLayout))
	}
	return instants, nil
}
