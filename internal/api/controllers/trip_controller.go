package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// ListTrips godoc
// @Summary List the caller's trips
// @Description Fetch all trips of the authenticated user with destinations embedded in order
// @Tags Trips
// @Produce json
// @Success 200 {array} response_models.TripResponse
// @Security SessionCookie
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	trips, err := t.tripService.ListTrips(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trips)
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Security SessionCookie
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrTripNameRequired)
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), currentUserID(c), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trip)
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Delete a trip and all of its destinations
// @Tags Trips
// @Param id path int true "Trip ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security SessionCookie
// @Router /trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	tripID, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrTripNotFound)
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), currentUserID(c), tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
