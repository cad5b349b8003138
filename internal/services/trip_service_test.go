package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"voyago/internal/models/request_models"
)

func delhiGoaRequest() request_models.TripRequest {
	return request_models.TripRequest{
		Origin:      "Delhi",
		Destination: "Goa",
		Date:        "2026-01-10",
		Travelers:   2,
		Budget:      40000,
		Days:        3,
	}
}

func TestPlanTripSuccess(t *testing.T) {
	generator := &fakeGenerator{reply: fencedPlan}
	images := &fakeImageSearcher{url: "https://images.example.com/goa.jpg"}
	svc := NewTripService(generator, images)

	resp := svc.PlanTrip(context.Background(), delhiGoaRequest())

	if resp.Origin != "Delhi" || resp.Destination != "Goa" || resp.Days != 3 {
		t.Errorf("request echo missing: %+v", resp)
	}
	if resp.TravelDuration != "2h" {
		t.Errorf("plan not taken from model output: %+v", resp.TripPlan)
	}
	if resp.DestinationImage != "https://images.example.com/goa.jpg" {
		t.Errorf("destinationImage = %q", resp.DestinationImage)
	}
	if resp.Lat != nil || resp.Lon != nil {
		t.Errorf("lat/lon should be null when destLat/destLon absent: %v %v", resp.Lat, resp.Lon)
	}
	if len(images.queries) != 1 || images.queries[0] != "Goa" {
		t.Errorf("image lookup queried with %v, want destination name", images.queries)
	}
}

func TestPlanTripPromptMentionsTripDetails(t *testing.T) {
	generator := &fakeGenerator{reply: fencedPlan}
	svc := NewTripService(generator, &fakeImageSearcher{url: "https://x/y.jpg"})

	svc.PlanTrip(context.Background(), delhiGoaRequest())

	if len(generator.prompts) != 1 {
		t.Fatalf("gateway called %d times, want 1", len(generator.prompts))
	}
	prompt := generator.prompts[0]
	for _, want := range []string{"Delhi", "Goa", "3 days", "Travelers: 2", "itinerary"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestPlanTripGatewayFailureDegrades(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("quota exceeded")}
	images := &fakeImageSearcher{url: "https://images.example.com/goa.jpg"}
	svc := NewTripService(generator, images)

	resp := svc.PlanTrip(context.Background(), delhiGoaRequest())

	if resp.BudgetMatch != "Could not compute" {
		t.Errorf("expected fallback plan, got %+v", resp.TripPlan)
	}
	if resp.EstimatedBudget != 40000 {
		t.Errorf("fallback estimatedBudget = %v, want the requested budget", resp.EstimatedBudget)
	}
	if len(resp.Itinerary) == 0 {
		t.Error("itinerary must never be empty")
	}
	// Image retrieval is isolated from the model failure.
	if resp.DestinationImage != "https://images.example.com/goa.jpg" {
		t.Errorf("model failure blocked image retrieval: %q", resp.DestinationImage)
	}
}

func TestPlanTripLatLonPassthrough(t *testing.T) {
	lat, lon := 15.2993, 74.124
	req := delhiGoaRequest()
	req.DestLat = &lat
	req.DestLon = &lon

	svc := NewTripService(&fakeGenerator{reply: fencedPlan}, &fakeImageSearcher{url: "https://x/y.jpg"})
	resp := svc.PlanTrip(context.Background(), req)

	if resp.Lat == nil || *resp.Lat != lat || resp.Lon == nil || *resp.Lon != lon {
		t.Errorf("lat/lon not passed through: %v %v", resp.Lat, resp.Lon)
	}
}

func TestPlanTripImageIsValidURL(t *testing.T) {
	svc := NewTripService(&fakeGenerator{reply: fencedPlan}, &fakeImageSearcher{url: "https://images.example.com/goa.jpg"})
	resp := svc.PlanTrip(context.Background(), delhiGoaRequest())

	parsed, err := url.ParseRequestURI(resp.DestinationImage)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		t.Errorf("destinationImage is not a valid URL: %q", resp.DestinationImage)
	}
}
