package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/services"
	"roamio/pkg/utils"
)

type SuggestionController struct {
	suggestionService services.SuggestionServiceInterface
}

func NewSuggestionController(suggestionService services.SuggestionServiceInterface) *SuggestionController {
	return &SuggestionController{
		suggestionService: suggestionService,
	}
}

// GetSuggestions godoc
// @Summary Suggest further destinations for a trip
// @Description Ask the configured model for up to five destinations fitting the trip
// @Tags Suggestions
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {array} response_models.SuggestionResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Security SessionCookie
// @Router /trips/{id}/suggestions [get]
func (s *SuggestionController) GetSuggestions(c *gin.Context) {
	tripID, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrTripNotFound)
		return
	}

	suggestions, err := s.suggestionService.SuggestForTrip(c.Request.Context(), currentUserID(c), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
