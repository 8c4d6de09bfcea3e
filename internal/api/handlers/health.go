package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"strompreis/internal/models"
)

// ServiceVersion is reported by the health endpoint.
const ServiceVersion = "1.0.0"

type HealthHandler struct {
	loc *time.Location
}

func NewHealthHandler(loc *time.Location) *HealthHandler {
	return &HealthHandler{loc: loc}
}

// Health godoc
// @Summary Health check
// @Description Returns the health status of the API
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "healthy",
		Service:  "strompreis",
		Version:  ServiceVersion,
		Timezone: h.loc.String(),
		Time:     time.Now().In(h.loc),
	})
}
