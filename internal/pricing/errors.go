package pricing

import "errors"

var (
	// ErrInvalidDate is returned when a requested date is malformed or
	// outside the supported window
	ErrInvalidDate = errors.New("invalid date")
	// ErrDataUnavailable is returned when the upstream fetch failed, as
	// opposed to succeeding with no published data
	ErrDataUnavailable = errors.New("market data unavailable")
)
