package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/tripfit/backend/internal/ai"
)

type ItineraryHandler struct {
	Service *ai.Service
}

// NewItineraryHandler создает обработчик запросов маршрутов.
func NewItineraryHandler(service *ai.Service) *ItineraryHandler {
	return &ItineraryHandler{Service: service}
}

type ItineraryResponse struct {
	ID        uuid.UUID    `json:"id"`
	Source    ai.Source    `json:"source"`
	Reason    string       `json:"reason,omitempty"`
	Itinerary ai.Itinerary `json:"itinerary"`
}

// Generate получает маршрут для анкеты поездки. Ошибки AI не возвращаются клиенту:
// в ответе всегда есть маршрут, а поле source показывает его происхождение.
func (h *ItineraryHandler) Generate(c echo.Context) error {
	var req ai.TripRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	req.Destination = strings.TrimSpace(req.Destination)
	req.Interests = normalizeInterests(req.Interests)

	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed: "+err.Error())
	}

	if _, _, err := parsePeriod(req.StartDate, req.EndDate); err != nil {
		return badRequest(c, err.Error())
	}

	id := uuid.New()
	result := h.Service.AcquireItinerary(c.Request().Context(), req)
	logItinerarySource(result, id, req.Destination)

	return c.JSON(http.StatusOK, ItineraryResponse{
		ID:        id,
		Source:    result.Source,
		Reason:    result.Reason,
		Itinerary: result.Itinerary,
	})
}

// normalizeInterests убирает пустые и повторяющиеся теги, сохраняя порядок первого вхождения.
func normalizeInterests(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))

	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}

		key := strings.ToLower(trimmed)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}

	return out
}

func logItinerarySource(result ai.Result, id uuid.UUID, destination string) {
	switch result.Source {
	case ai.SourceFallback:
		slog.Warn("itinerary fallback used",
			slog.String("itinerary_id", id.String()),
			slog.String("destination", destination),
			slog.String("reason", result.Reason),
		)
	default:
		slog.Info("itinerary generated",
			slog.String("itinerary_id", id.String()),
			slog.String("destination", destination),
			slog.Int("days", len(result.Itinerary.DailyPlan)),
		)
	}
}
