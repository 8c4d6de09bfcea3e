package pricing

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"strompreis/internal/models"
)

// WriteCSV renders a three-day result as CSV: a header row with the three
// dates, then one row per distinct hour label across the union of the three
// grids, in chronological label order. Cells hold the EUR/MWh price; missing
// slots and labels absent from a day render as empty cells.
func WriteCSV(w io.Writer, result models.ThreeDayResult) error {
	days := [3]models.DayGrid{result.PreviousDay, result.SelectedDay, result.NextDay}

	labels := make([]string, 0, 26)
	seen := make(map[string]bool, 26)
	var byLabel [3]map[string]string
	for i, day := range days {
		byLabel[i] = make(map[string]string, len(day.Hours))
		for _, slot := range day.Hours {
			if !seen[slot.HourLabel] {
				seen[slot.HourLabel] = true
				labels = append(labels, slot.HourLabel)
			}
			if slot.PriceEurMwh != nil {
				byLabel[i][slot.HourLabel] = strconv.FormatFloat(*slot.PriceEurMwh, 'f', -1, 64)
			}
		}
	}
	// HH:MM labels with an optional A/B suffix sort chronologically as
	// plain strings, A before B.
	sort.Strings(labels)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"hour", days[0].Date, days[1].Date, days[2].Date}); err != nil {
		return err
	}
	for _, label := range labels {
		row := []string{label, byLabel[0][label], byLabel[1][label], byLabel[2][label]}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFilename returns the download filename hint for a selected date.
func CSVFilename(date time.Time) string {
	return fmt.Sprintf("electricity_prices_%s_three_days.csv", date.Format(DateLayout))
}
