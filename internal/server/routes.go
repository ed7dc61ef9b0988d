package server

import (
	"github.com/labstack/echo/v4"

	"example.com/tripfit/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	healthHandler *handlers.HealthHandler,
	itineraryHandler *handlers.ItineraryHandler,
	exportHandler *handlers.ExportHandler,
	aiRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", healthHandler.Health)

	api := e.Group("/api/v1")

	itineraries := api.Group("/itineraries")
	itineraries.POST("", itineraryHandler.Generate, aiRateLimiter)
	itineraries.POST("/export/pdf", exportHandler.ExportPDF)
	itineraries.POST("/export/csv", exportHandler.ExportCSV)
}
