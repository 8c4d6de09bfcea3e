package models

import "time"

// PricePoint represents one raw upstream market hour: the UTC instant the
// hour starts at and the day-ahead price in EUR/MWh.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price_eur_mwh"`
}

// HourSlot is one local hour in a day grid. Prices are nil when no upstream
// point exists for the slot's instant.
type HourSlot struct {
	TimestampMS     int64    `json:"timestamp_ms"`
	HourLabel       string   `json:"hour_label" example:"02:00A"`
	PriceEurMwh     *float64 `json:"price_eur_mwh"`
	PriceCtKwh      *float64 `json:"price_ct_kwh"`
	IsMissing       bool     `json:"is_missing"`
	IsDSTTransition bool     `json:"is_dst_transition"`
}

// DayGrid is the hour-by-hour price grid for one local calendar day.
// TotalHours is 23, 24 or 25 depending on DST transitions.
type DayGrid struct {
	Date         string     `json:"date" example:"2025-10-26"`
	Hours        []HourSlot `json:"hours"`
	TotalHours   int        `json:"total_hours"`
	MissingHours int        `json:"missing_hours"`
}

// DayStats holds comparison statistics over a day grid's non-missing prices,
// in EUR/MWh. All three values are nil when every slot is missing.
type DayStats struct {
	Average      *float64 `json:"average"`
	Minimum      *float64 `json:"minimum"`
	Maximum      *float64 `json:"maximum"`
	MissingCount int      `json:"missing_count"`
}

// ThreeDayResult is the combined response for a selected date and its
// calendar neighbours. Metadata is only populated when requested.
type ThreeDayResult struct {
	PreviousDay DayGrid                `json:"previous_day"`
	SelectedDay DayGrid                `json:"selected_day"`
	NextDay     DayGrid                `json:"next_day"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}
