package pricing

import "strompreis/internal/models"

// Stats computes average, minimum and maximum over a grid's non-missing
// prices in EUR/MWh. Comparison is signed; negative prices are valid. A grid
// with no non-missing slot yields nil statistics, never an error. The
// average is rounded to two decimals for display.
func Stats(grid models.DayGrid) models.DayStats {
	stats := models.DayStats{MissingCount: grid.MissingHours}

	var sum, min, max float64
	n := 0
	for _, slot := range grid.Hours {
		if slot.IsMissing || slot.PriceEurMwh == nil {
			continue
		}
		price := *slot.PriceEurMwh
		if n == 0 || price < min {
			min = price
		}
		if n == 0 || price > max {
			max = price
		}
		sum += price
		n++
	}
	if n == 0 {
		return stats
	}

	avg := round2(sum / float64(n))
	stats.Average = &avg
	stats.Minimum = &min
	stats.Maximum = &max
	return stats
}
