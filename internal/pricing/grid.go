package pricing

import (
	"math"
	"time"

	"strompreis/internal/models"
)

const hourLabelLayout = "15:04"

// conversionFactor converts EUR/MWh to ct/kWh.
const conversionFactor = 10.0

// round2 rounds to two decimals for display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildGrid joins the expected hour-start instants against raw prices keyed
// by epoch milliseconds and returns the day's grid. Instants with no matching
// price become missing slots; a wall-clock label shared by two instants on a
// fall-back day is disambiguated with an A/B suffix, A on the earlier UTC
// instant, and both slots are flagged as DST transition slots. Slot order
// follows the instant order.
func BuildGrid(date time.Time, instants []time.Time, prices map[int64]float64, loc *time.Location) models.DayGrid {
	grid := models.DayGrid{
		Date:  date.In(loc).Format(DateLayout),
		Hours: make([]models.HourSlot, 0, len(instants)),
	}

	labelCounts := make(map[string]int, len(instants))
	for _, t := range instants {
		labelCounts[t.In(loc).Format(hourLabelLayout)]++
	}

	labelSeen := make(map[string]int, 2)
	for _, t := range instants {
		wallLabel := t.In(loc).Format(hourLabelLayout)
		label := wallLabel
		repeated := labelCounts[wallLabel] > 1
		if repeated {
			if labelSeen[wallLabel] == 0 {
				label += "A"
			} else {
				label += "B"
			}
			labelSeen[wallLabel]++
		}

		slot := models.HourSlot{
			TimestampMS:     t.UnixMilli(),
			HourLabel:       label,
			IsMissing:       true,
			IsDSTTransition: repeated,
		}
		if price, ok := prices[t.UnixMilli()]; ok {
			eur := price
			ct := round2(price / conversionFactor)
			slot.PriceEurMwh = &eur
			slot.PriceCtKwh = &ct
			slot.IsMissing = false
		} else {
			grid.MissingHours++
		}
		grid.Hours = append(grid.Hours, slot)
	}

	grid.TotalHours = len(grid.Hours)
	return grid
}
