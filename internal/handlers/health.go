package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/tripfit/backend/internal/ai"
)

const (
	aiModeLive     = "live"
	aiModeFallback = "fallback"
)

type HealthResponse struct {
	Status string `json:"status"`
	AIMode string `json:"ai_mode"`
}

type HealthHandler struct {
	Service *ai.Service
}

// NewHealthHandler создает обработчик статуса сервиса.
func NewHealthHandler(service *ai.Service) *HealthHandler {
	return &HealthHandler{Service: service}
}

// Health возвращает статус сервиса и режим генерации маршрутов.
func (h *HealthHandler) Health(c echo.Context) error {
	mode := aiModeFallback
	if h.Service != nil && h.Service.LiveEnabled() {
		mode = aiModeLive
	}

	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", AIMode: mode})
}
