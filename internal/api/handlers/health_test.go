package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strompreis/internal/api/handlers"
	"strompreis/internal/models"
)

func TestHealth(t *testing.T) {
	loc := marketLoc(t)
	h := handlers.NewHealthHandler(loc)

	r := gin.New()
	r.GET("/health", h.Health)

	w := doGet(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "strompreis", resp.Service)
	assert.Equal(t, handlers.ServiceVersion, resp.Version)
	assert.Equal(t, "Europe/Vienna", resp.Timezone)
	assert.False(t, resp.Time.IsZero())
}
