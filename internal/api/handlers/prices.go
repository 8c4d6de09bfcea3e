package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"strompreis/internal/models"
	"strompreis/internal/pricing"
)

// PriceHandler serves the three-day price window endpoints
type PriceHandler struct {
	composer *pricing.Composer
	loc      *time.Location
	log      zerolog.Logger
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(composer *pricing.Composer, loc *time.Location, log zerolog.Logger) *PriceHandler {
	return &PriceHandler{
		composer: composer,
		loc:      loc,
		log:      log,
	}
}

// dateURI binds the date path parameter
type dateURI struct {
	Date string `uri:"date" binding:"required,isodate"`
}

// compose parses the date parameter and builds the three-day window,
// writing the error response itself when anything fails.
func (h *PriceHandler) compose(c *gin.Context) (models.ThreeDayResult, time.Time, bool) {
	var uri dateURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "date must be a YYYY-MM-DD calendar date"})
		return models.ThreeDayResult{}, time.Time{}, false
	}

	date, err := pricing.ParseDate(uri.Date, h.loc, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return models.ThreeDayResult{}, time.Time{}, false
	}

	result, err := h.composer.Compose(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, pricing.ErrDataUnavailable) {
			h.log.Error().Err(err).Str("date", uri.Date).Msg("upstream fetch failed")
			c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "market data unavailable"})
			return models.ThreeDayResult{}, time.Time{}, false
		}
		h.log.Error().Err(err).Str("date", uri.Date).Msg("failed to compose price window")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return models.ThreeDayResult{}, time.Time{}, false
	}

	return result, date, true
}

// GetPrices godoc
// @Summary Get electricity prices for a date and its neighbours
// @Description Returns hourly day-ahead prices for the selected date plus the previous and next calendar day, normalized to the market timezone. DST-transition days have 23 or 25 hours; hours the exchange has not published yet are returned as missing slots.
// @Tags prices
// @Accept json
// @Produce json
// @Param date path string true "Date in YYYY-MM-DD format"
// @Param include_metadata query boolean false "Include additional metadata"
// @Success 200 {object} models.ThreeDayResult
// @Failure 400 {object} models.ErrorResponse "Invalid or out-of-range date"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 502 {object} models.ErrorResponse "Upstream market data unavailable"
// @Router /prices/{date} [get]
func (h *PriceHandler) GetPrices(c *gin.Context) {
	result, _, ok := h.compose(c)
	if !ok {
		return
	}

	if c.Query("include_metadata") == "true" {
		result.Metadata = h.buildMetadata(result)
	}

	c.JSON(http.StatusOK, result)
}

// buildMetadata assembles the optional metadata block: timezone, unit
// conversion, per-day hour counts and comparison statistics.
func (h *PriceHandler) buildMetadata(result models.ThreeDayResult) map[string]interface{} {
	return map[string]interface{}{
		"timezone":          h.loc.String(),
		"conversion_factor": 10.0,
		"hour_counts": map[string]int{
			"previous": result.PreviousDay.TotalHours,
			"selected": result.SelectedDay.TotalHours,
			"next":     result.NextDay.TotalHours,
		},
		"stats": map[string]models.DayStats{
			"previous": pricing.Stats(result.PreviousDay),
			"selected": pricing.Stats(result.SelectedDay),
			"next":     pricing.Stats(result.NextDay),
		},
	}
}

// ExportCSV godoc
// @Summary Export the three-day price window as CSV
// @Description Returns the same three-day window as the prices endpoint, pivoted to one row per hour label with one price column per day. Missing hours render as empty cells.
// @Tags prices
// @Produce text/csv
// @Param date path string true "Date in YYYY-MM-DD format"
// @Success 200 {string} string "CSV data"
// @Failure 400 {object} models.ErrorResponse "Invalid or out-of-range date"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 502 {object} models.ErrorResponse "Upstream market data unavailable"
// @Router /export/{date}/export-csv [get]
func (h *PriceHandler) ExportCSV(c *gin.Context) {
	result, date, ok := h.compose(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := pricing.WriteCSV(&buf, result); err != nil {
		h.log.Error().Err(err).Msg("failed to render CSV export")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", pricing.CSVFilename(date)))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
