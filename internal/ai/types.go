package ai

const (
	TravelerSolo   = "solo"
	TravelerCouple = "couple"
	TravelerFamily = "family"
	TravelerGroup  = "group"

	AgeUnder18 = "under-18"
	Age18To35  = "18-35"
	Age36To60  = "36-60"
	Age60Plus  = "60+"
)

type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

const (
	ReasonCredentialMissing = "credential_missing"
	ReasonTransportError    = "transport_error"
	ReasonMalformedResponse = "malformed_response"
	ReasonInvalidItinerary  = "invalid_itinerary"
)

type TripRequest struct {
	Destination  string   `json:"destination" validate:"required"`
	StartDate    string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	TravelerType string   `json:"travelerType" validate:"required,oneof=solo couple family group"`
	AgeGroup     string   `json:"ageGroup" validate:"required,oneof=under-18 18-35 36-60 60+"`
	NumTravelers int      `json:"numTravelers" validate:"gt=0"`
	Budget       float64  `json:"budget" validate:"gte=0"`
	Interests    []string `json:"interests"`
}

type Itinerary struct {
	Title          string    `json:"title"`
	DailyPlan      []DayPlan `json:"dailyPlan"`
	PackingList    []string  `json:"packingList"`
	SeasonalAdvice string    `json:"seasonalAdvice"`
}

type DayPlan struct {
	Day        int      `json:"day"`
	Theme      string   `json:"theme"`
	Activities []string `json:"activities"`
	HiddenGem  string   `json:"hiddenGem,omitempty"`
}

// Result несет итоговый маршрут и источник, из которого он получен.
type Result struct {
	Source    Source    `json:"source"`
	Reason    string    `json:"reason,omitempty"`
	Itinerary Itinerary `json:"itinerary"`
}
