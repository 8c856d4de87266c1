package services

import (
	"context"
	"regexp"
	"strings"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

// Deliberately loose: register only requires a local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 8

type UserServiceInterface interface {
	// Register validates the payload, hashes the password and persists the
	// user; the first user ever registered becomes admin. Returns the user
	// and a session token for the caller's cookie.
	Register(ctx context.Context, request request_models.RegisterRequest) (*db_models.User, string, error)
	// Login accepts the username or the email as identifier. Unknown user
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, error)
	GetByID(ctx context.Context, id uint) (*db_models.User, error)
	// ListUsers is admin only; actingUserID is re-checked against the store.
	ListUsers(ctx context.Context, actingUserID uint) ([]db_models.User, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Register(ctx context.Context, request request_models.RegisterRequest) (*db_models.User, string, error) {
	username := strings.TrimSpace(request.Username)
	email := strings.TrimSpace(request.Email)

	if username == "" || email == "" || request.Password == "" || request.ConfirmPassword == "" {
		return nil, "", utils.ErrInvalidInput
	}
	if !emailPattern.MatchString(email) {
		return nil, "", utils.ErrInvalidEmail
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, "", utils.ErrUsernameTaken
	}

	existing, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, "", utils.ErrEmailTaken
	}

	if request.Password != request.ConfirmPassword {
		return nil, "", utils.ErrPasswordMismatch
	}
	if len(request.Password) < minPasswordLength {
		return nil, "", utils.ErrPasswordTooShort
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Username:     username,
		Email:        &email,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Insert(ctx, newUser); err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	token, err := utils.CreateSessionToken(newUser.ID, newUser.IsAdmin)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	return newUser, token, nil
}

func (s *UserService) Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, error) {
	user, err := s.userRepo.FindByIdentifier(ctx, strings.TrimSpace(request.Username))
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if user == nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateSessionToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	return user, token, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, actingUserID uint) ([]db_models.User, error) {
	actingUser, err := s.userRepo.FindByID(ctx, actingUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := RequireAdmin(actingUser); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}
