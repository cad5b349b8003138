package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// PlanTrip always answers 200 with a fully populated plan; dependency
// failures degrade inside the service. The only caller error is a body that
// does not decode.
func (t *TripController) PlanTrip(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, t.tripService.PlanTrip(c.Request.Context(), req))
}
