package response_models

import "roamio/internal/models/db_models"

type UserResponse struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	IsAdmin  bool    `json:"is_admin"`
}

type AuthStatusResponse struct {
	IsAuthenticated bool          `json:"isAuthenticated"`
	User            *UserResponse `json:"user,omitempty"`
}

func BuildUserResponse(user *db_models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	}
}
