package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// AddDestination godoc
// @Summary Add a destination to a trip
// @Description Append a destination; its order_index is one past the current maximum of the trip
// @Tags Destinations
// @Accept json
// @Produce json
// @Param id path int true "Trip ID"
// @Param request body request_models.AddDestinationRequest true "Destination payload (lon maps to lng)"
// @Success 201 {object} response_models.DestinationResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security SessionCookie
// @Router /trips/{id}/destinations [post]
func (d *DestinationController) AddDestination(c *gin.Context) {
	tripID, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrTripNotFound)
		return
	}

	var req request_models.AddDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrDestinationRequired)
		return
	}

	dest, err := d.destinationService.AddDestination(c.Request.Context(), currentUserID(c), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dest)
}

// UpdateDestination godoc
// @Summary Partially update a destination
// @Description Only lat, lng, visit_date and notes can change; absent fields stay untouched
// @Tags Destinations
// @Accept json
// @Produce json
// @Param id path int true "Destination ID"
// @Param request body request_models.UpdateDestinationRequest true "Partial payload"
// @Success 200 {object} response_models.DestinationResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security SessionCookie
// @Router /destinations/{id} [patch]
func (d *DestinationController) UpdateDestination(c *gin.Context) {
	destID, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrDestinationNotFound)
		return
	}

	var req request_models.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	dest, err := d.destinationService.UpdateDestination(c.Request.Context(), currentUserID(c), destID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dest)
}

// DeleteDestination godoc
// @Summary Delete a destination
// @Description Remove one destination; siblings keep their order_index values
// @Tags Destinations
// @Param id path int true "Destination ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security SessionCookie
// @Router /destinations/{id} [delete]
func (d *DestinationController) DeleteDestination(c *gin.Context) {
	destID, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrDestinationNotFound)
		return
	}

	if err := d.destinationService.DeleteDestination(c.Request.Context(), currentUserID(c), destID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReorderDestinations godoc
// @Summary Reorder a trip's destinations
// @Description Assign order_index by list position; IDs not belonging to the trip are skipped silently
// @Tags Destinations
// @Accept json
// @Produce json
// @Param id path int true "Trip ID"
// @Param request body request_models.ReorderDestinationsRequest true "Desired order"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security SessionCookie
// @Router /trips/{id}/destinations/reorder [post]
func (d *DestinationController) ReorderDestinations(c *gin.Context) {
	tripID, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrTripNotFound)
		return
	}

	var req request_models.ReorderDestinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DestinationIDs == nil {
		utils.RespondError(c, http.StatusBadRequest, "destination_ids is required")
		return
	}

	if err := d.destinationService.ReorderDestinations(c.Request.Context(), currentUserID(c), tripID, req.DestinationIDs); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destinations reordered successfully")
}
