package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Ключи короче этого порога заведомо невалидны, запрос к API не выполняется.
const minCredentialLength = 10

type ServiceConfig struct {
	APIKey string
}

type Service struct {
	client Client
	apiKey string
}

// NewService создает сервис получения маршрутов поверх AI-клиента.
func NewService(client Client, cfg ServiceConfig) *Service {
	return &Service{
		client: client,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}
}

// LiveEnabled сообщает, будет ли сервис обращаться к внешнему API.
func (s *Service) LiveEnabled() bool {
	return s.client != nil && len(s.apiKey) >= minCredentialLength
}

// AcquireItinerary возвращает маршрут для поездки. Любая ошибка генерации
// заменяется шаблонным маршрутом, источник отражается в Result.
func (s *Service) AcquireItinerary(ctx context.Context, req TripRequest) Result {
	itinerary, err := s.generate(ctx, req)
	if err == nil {
		return Result{Source: SourceLive, Itinerary: itinerary}
	}

	reason := fallbackReason(err)
	if reason != ReasonCredentialMissing {
		slog.Warn("ai itinerary generation failed",
			slog.String("reason", reason),
			slog.String("destination", req.Destination),
			slog.String("error", err.Error()),
		)
	}

	return Result{
		Source:    SourceFallback,
		Reason:    reason,
		Itinerary: FallbackItinerary(req),
	}
}

func (s *Service) generate(ctx context.Context, req TripRequest) (Itinerary, error) {
	if !s.LiveEnabled() {
		return Itinerary{}, ErrCredentialMissing
	}

	content, err := s.client.Generate(ctx, BuildItineraryPrompt(req))
	if err != nil {
		return Itinerary{}, fmt.Errorf("generate itinerary: %w", err)
	}

	var itinerary Itinerary
	if err := parseJSON(content, &itinerary); err != nil {
		return Itinerary{}, err
	}

	normalizeItinerary(&itinerary)
	if err := ValidateItinerary(itinerary); err != nil {
		return Itinerary{}, err
	}

	return itinerary, nil
}

// BuildItineraryPrompt собирает инструкцию для модели со всеми параметрами поездки.
func BuildItineraryPrompt(req TripRequest) string {
	interests := "no specific preferences"
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}

	return fmt.Sprintf(`Build a personalized travel itinerary for a trip to %[1]s.
Details:
- Dates: %[2]s to %[3]s
- Traveler Type: %[4]s
- Age Group: %[5]s
- Number of Travelers: %[6]d
- Interests: %[7]s
- Budget: %[8]s

Format the response as a JSON object with:
- title: A catchy title for the trip
- dailyPlan: An array of objects, one for each day, with:
    - day: Day number, starting at 1
    - theme: Daily theme
    - activities: Array of 3-4 specific activities including food stops
    - hiddenGem: One offbeat/local spot to visit that day
- packingList: Array of 5-7 essential items
- seasonalAdvice: A short warning or advice based on the destination and timing (e.g. monsoon, heatwave)

Ensure the activities are suitable for the %[5]s age group and %[4]s traveler type.
Return ONLY the JSON. No markdown backticks, no extra text.`,
		req.Destination,
		req.StartDate,
		req.EndDate,
		req.TravelerType,
		req.AgeGroup,
		req.NumTravelers,
		interests,
		strconv.FormatFloat(req.Budget, 'f', -1, 64),
	)
}

func parseJSON(input string, target interface{}) error {
	payload, ok := ExtractJSONObject(input)
	if !ok {
		return ErrMalformedResponse
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return nil
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, ErrCredentialMissing):
		return ReasonCredentialMissing
	case errors.Is(err, ErrMalformedResponse):
		return ReasonMalformedResponse
	case errors.Is(err, ErrInvalidItinerary):
		return ReasonInvalidItinerary
	default:
		return ReasonTransportError
	}
}
