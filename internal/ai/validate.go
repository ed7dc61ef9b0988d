package ai

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrCredentialMissing  = errors.New("ai credential is missing")
	ErrMalformedResponse  = errors.New("ai response does not contain a json object")
	ErrInvalidItinerary   = errors.New("invalid itinerary")
	ErrInvalidTripRequest = errors.New("invalid trip request")
)

// itineraryShape повторяет Itinerary с тегами валидации, чтобы не светить их в JSON-типах.
type itineraryShape struct {
	Title          string     `validate:"required"`
	DailyPlan      []dayShape `validate:"min=1,dive"`
	PackingList    []string   `validate:"min=5,max=7,dive,required"`
	SeasonalAdvice string     `validate:"required"`
}

type dayShape struct {
	Day        int      `validate:"gt=0"`
	Activities []string `validate:"min=3,max=4,dive,required"`
}

var validate = validator.New()

// ValidateTripRequest проверяет входные данные поездки по тегам структуры.
func ValidateTripRequest(req TripRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidTripRequest)
	}

	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTripRequest, err)
	}

	return nil
}

// ValidateItinerary проверяет, что маршрут соответствует ожидаемой структуре.
func ValidateItinerary(itinerary Itinerary) error {
	shape := itineraryShape{
		Title:          strings.TrimSpace(itinerary.Title),
		DailyPlan:      make([]dayShape, 0, len(itinerary.DailyPlan)),
		PackingList:    trimAll(itinerary.PackingList),
		SeasonalAdvice: strings.TrimSpace(itinerary.SeasonalAdvice),
	}
	for _, day := range itinerary.DailyPlan {
		shape.DailyPlan = append(shape.DailyPlan, dayShape{
			Day:        day.Day,
			Activities: trimAll(day.Activities),
		})
	}

	if err := validate.Struct(shape); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidItinerary, err)
	}

	previous := 0
	for i, day := range itinerary.DailyPlan {
		if i == 0 && day.Day != 1 {
			return fmt.Errorf("%w: daily plan must start at day 1", ErrInvalidItinerary)
		}
		if day.Day <= previous {
			return fmt.Errorf("%w: day numbers must be strictly increasing", ErrInvalidItinerary)
		}
		previous = day.Day
	}

	return nil
}

// normalizeItinerary нумерует дни по порядку, если модель не указала ни одного номера.
func normalizeItinerary(itinerary *Itinerary) {
	for _, day := range itinerary.DailyPlan {
		if day.Day != 0 {
			return
		}
	}

	for i := range itinerary.DailyPlan {
		itinerary.DailyPlan[i].Day = i + 1
	}
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}

	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, strings.TrimSpace(value))
	}
	return out
}
