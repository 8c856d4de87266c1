package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/middleware"
	"roamio/pkg/utils"
)

type AuthController struct {
	userService services.UserServiceInterface
}

func NewAuthController(userService services.UserServiceInterface) *AuthController {
	return &AuthController{
		userService: userService,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account and establish a session for it
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} response_models.UserResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "username, email, password and confirmPassword are required")
		return
	}

	user, token, err := a.userService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	middleware.SetSessionCookie(c, token)
	c.JSON(http.StatusCreated, response_models.BuildUserResponse(user))
}

// Login godoc
// @Summary Log in
// @Description Authenticate by username or email and establish a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.UserResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "username and password are required")
		return
	}

	user, token, err := a.userService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	middleware.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, response_models.BuildUserResponse(user))
}

// Logout godoc
// @Summary Log out
// @Description Invalidate the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	utils.RespondSuccess(c, nil, "Logged out successfully")
}

// Status godoc
// @Summary Session status
// @Description Side-effect-free probe for the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} response_models.AuthStatusResponse
// @Router /auth/status [get]
func (a *AuthController) Status(c *gin.Context) {
	status := response_models.AuthStatusResponse{IsAuthenticated: false}

	token, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && token != "" {
		if claims, err := utils.ValidateSessionToken(token); err == nil {
			if user, err := a.userService.GetByID(c.Request.Context(), claims.UserID); err == nil {
				out := response_models.BuildUserResponse(user)
				status.IsAuthenticated = true
				status.User = &out
			}
		}
	}

	c.JSON(http.StatusOK, status)
}
