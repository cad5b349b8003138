package services

import (
	"encoding/json"
	"strings"

	"voyago/internal/models/response_models"
)

// NormalizePlan turns raw model output into a well-formed TripPlan. It is
// total: whatever the model emits (markdown fences, leading prose, control
// bytes, refusals, garbage), the caller gets back a valid plan. When nothing
// parseable survives cleaning, the fixed fallback plan is returned with the
// requested budget echoed into estimatedBudget.
func NormalizePlan(raw string, fallbackBudget float64) response_models.TripPlan {
	cleaned := cleanModelJSON(raw)

	var plan response_models.TripPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return fallbackPlan(fallbackBudget)
	}
	if !validPlanShape(plan) {
		return fallbackPlan(fallbackBudget)
	}

	if plan.MappableLocations == nil {
		plan.MappableLocations = []string{}
	}
	return plan
}

// cleanModelJSON strips markdown fences, extracts the outermost {...} span
// and drops control characters that break strict JSON parsing.
func cleanModelJSON(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	s = s[start : end+1]

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// validPlanShape rejects structurally broken plans so a model that answers
// {"itinerary":"oops"}-style nonsense still degrades to the fallback instead
// of reaching the caller half-empty.
func validPlanShape(plan response_models.TripPlan) bool {
	if len(plan.Itinerary) == 0 {
		return false
	}
	for _, day := range plan.Itinerary {
		if day.Day < 1 {
			return false
		}
	}
	return true
}

func fallbackPlan(budget float64) response_models.TripPlan {
	return response_models.TripPlan{
		TravelDuration:  "N/A",
		Weather:         "N/A",
		BestSeason:      "N/A",
		EstimatedBudget: budget,
		BudgetMatch:     "Could not compute",
		Itinerary: []response_models.DayPlan{
			{
				Day:       1,
				Morning:   "Trip info unavailable",
				Afternoon: "Please try again",
				Evening:   "Server error",
			},
		},
		MappableLocations: []string{},
	}
}
