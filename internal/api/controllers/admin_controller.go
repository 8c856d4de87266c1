package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type AdminController struct {
	userService services.UserServiceInterface
}

func NewAdminController(userService services.UserServiceInterface) *AdminController {
	return &AdminController{
		userService: userService,
	}
}

// ListUsers godoc
// @Summary List all users
// @Description Admin only
// @Tags Admin
// @Produce json
// @Success 200 {array} response_models.UserResponse
// @Failure 403 {object} utils.APIResponse
// @Security SessionCookie
// @Router /admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	users, err := a.userService.ListUsers(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, response_models.BuildUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}
