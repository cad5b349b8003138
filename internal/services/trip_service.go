package services

import (
	"context"
	"fmt"

	"voyago/internal/infra"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/logger"
)

type TripServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.TripRequest) response_models.TripResponse
}

type TripService struct {
	generator infra.TextGenerator
	images    infra.ImageSearcher
}

func NewTripService(generator infra.TextGenerator, images infra.ImageSearcher) TripServiceInterface {
	return &TripService{
		generator: generator,
		images:    images,
	}
}

// PlanTrip composes the model call, plan normalization and the destination
// image lookup into one response. It never fails: a dead model yields the
// fallback plan, a dead image API yields a placeholder, and the two failures
// are isolated from each other.
func (t *TripService) PlanTrip(ctx context.Context, req request_models.TripRequest) response_models.TripResponse {
	logger.Infof("Trip planning request: %s -> %s", req.Origin, req.Destination)

	raw := ""
	text, err := t.generator.Generate(ctx, buildTripPrompt(req))
	if err != nil {
		logger.Errorf("Model gateway error: %v", err)
	} else {
		raw = text
	}

	plan := NormalizePlan(raw, req.Budget)
	destinationImage := t.images.Search(ctx, req.Destination)

	return response_models.TripResponse{
		Origin:           req.Origin,
		Destination:      req.Destination,
		Date:             req.Date,
		Travelers:        req.Travelers,
		Budget:           req.Budget,
		Days:             req.Days,
		Lat:              req.DestLat,
		Lon:              req.DestLon,
		DestinationImage: destinationImage,
		TripPlan:         plan,
	}
}

// buildTripPrompt is a one-shot instruction: trip details plus a literal
// example of the JSON shape we want back. The example steers the model
// toward the exact field names the normalizer expects.
func buildTripPrompt(req request_models.TripRequest) string {
	return fmt.Sprintf(`
      You are an expert travel planner. Create a structured trip plan.

      Trip details:
      - From: %s
      - To: %s
      - Date: %s
      - Duration: %d days
      - Travelers: %d
      - Budget: ₹%.0f

      Respond with ONLY valid JSON in this format:
      {
        "travelDuration": "8 hrs flight",
        "weather": "Pleasant and mild",
        "bestSeason": "October to February",
        "estimatedBudget": 25000,
        "budgetMatch": "Within budget",
        "itinerary": [
          {"day":1,"morning":"Arrival","afternoon":"City tour","evening":"Dinner at local restaurant"}
        ],
        "mappableLocations": ["Airport","City Center","Hotel"]
      }
    `, req.Origin, req.Destination, req.Date, req.Days, req.Travelers, req.Budget)
}
