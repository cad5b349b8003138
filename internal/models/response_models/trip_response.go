package response_models

// DayPlan is a single itinerary day as produced by the model.
type DayPlan struct {
	Day       int    `json:"day"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// TripPlan is the structured payload extracted from the model's reply. The
// normalizer guarantees a well-formed value even when the model misbehaves.
type TripPlan struct {
	TravelDuration    string    `json:"travelDuration"`
	Weather           string    `json:"weather"`
	BestSeason        string    `json:"bestSeason"`
	EstimatedBudget   float64   `json:"estimatedBudget"`
	BudgetMatch       string    `json:"budgetMatch"`
	Itinerary         []DayPlan `json:"itinerary"`
	MappableLocations []string  `json:"mappableLocations"`
}

// TripResponse is the request echo merged with the generated plan and the
// destination image. This is the only thing /trip/plan ever returns.
type TripResponse struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Date        string   `json:"date"`
	Travelers   int      `json:"travelers"`
	Budget      float64  `json:"budget"`
	Days        int      `json:"days"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`

	DestinationImage string `json:"destinationImage"`

	TripPlan
}
