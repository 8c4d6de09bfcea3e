// Package routes handles the setup and configuration of API routes
package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "strompreis/docs" // Import swagger docs
	"strompreis/internal/api/handlers"
	"strompreis/internal/api/middleware"
	"strompreis/internal/config"
	"strompreis/internal/logging"
	"strompreis/internal/metrics"
	"strompreis/internal/pricing"
)

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, composer *pricing.Composer, loc *time.Location, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(logging.RequestLogger(log))
	r.Use(middleware.CORS(cfg.API.CORSOrigins))
	r.Use(metrics.Middleware())

	// Routes without rate limiting
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	healthHandler := handlers.NewHealthHandler(loc)
	r.GET("/health", healthHandler.Health)

	// Apply rate limiting to the price endpoints
	r.Use(middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.Burst).Middleware())

	priceHandler := handlers.NewPriceHandler(composer, loc, log)

	api := r.Group("/api")
	{
		prices := api.Group("/prices")
		{
			prices.GET("/:date", priceHandler.GetPrices)
			// Historical export path, kept for existing consumers.
			prices.GET("/:date/export-csv", priceHandler.ExportCSV)
		}

		api.GET("/export/:date/export-csv", priceHandler.ExportCSV)
	}

	return r
}
