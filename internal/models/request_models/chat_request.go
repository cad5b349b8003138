package request_models

import "voyago/internal/models/response_models"

// ChatContext is a caller-supplied snapshot of a previously generated trip.
// The server keeps no chat session state, so the frontend re-sends this on
// every message.
type ChatContext struct {
	Origin      string                    `json:"origin,omitempty"`
	Destination string                    `json:"destination,omitempty"`
	Days        int                       `json:"days,omitempty"`
	Travelers   int                       `json:"travelers,omitempty"`
	Budget      float64                   `json:"budget,omitempty"`
	Weather     string                    `json:"weather,omitempty"`
	Itinerary   []response_models.DayPlan `json:"itinerary,omitempty"`
}

type ChatRequest struct {
	Message string       `json:"message"`
	Context *ChatContext `json:"context,omitempty"`
}

// IsEmpty reports whether the context carries nothing worth rendering into
// the prompt.
func (c *ChatContext) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Origin == "" && c.Destination == "" && c.Days == 0 && c.Travelers == 0 &&
		c.Budget == 0 && c.Weather == "" && len(c.Itinerary) == 0
}
