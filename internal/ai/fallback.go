package ai

import "fmt"

// FallbackItinerary строит шаблонный маршрут без обращения к внешним сервисам.
func FallbackItinerary(req TripRequest) Itinerary {
	return Itinerary{
		Title: fmt.Sprintf("Majestic %s Getaway", req.Destination),
		DailyPlan: []DayPlan{
			{
				Day:   1,
				Theme: "Cultural Immersion",
				Activities: []string{
					"Breakfast at a historic local cafe",
					"Visit to the city's main heritage fort",
					"Lunch featuring regional specialties",
					"Exploring the vibrant local handicrafts market",
				},
				HiddenGem: "A serene hidden garden away from the main tourist trail",
			},
			{
				Day:   2,
				Theme: "Nature & Exploration",
				Activities: []string{
					"Morning walk in the local nature park",
					"Visit to a nearby scenic lake or viewpoint",
					"Picnic lunch in a quiet spot",
					"Evening cultural dance performance",
				},
				HiddenGem: "A small hilltop temple with panoramic views of the entire region",
			},
		},
		PackingList: []string{
			"Comfortable cotton clothing",
			"Sunscreen and wide-brimmed hat",
			"Reusable water bottle",
			"Universal power adapter",
			"Local pharmacy first-aid kit",
		},
		SeasonalAdvice: fmt.Sprintf("The weather in %s is generally favorable during your dates. Carry light layers for early mornings.", req.Destination),
	}
}
