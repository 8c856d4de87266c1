package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
	"roamio/internal/testutil"
	"roamio/pkg/utils"
)

func newUserService(t *testing.T) UserServiceInterface {
	t.Helper()
	return NewUserService(repositories.NewUserRepository(testutil.NewGormDB(t)))
}

func registerRequest(username, email string) request_models.RegisterRequest {
	return request_models.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        "password1",
		ConfirmPassword: "password1",
	}
}

func TestRegisterFirstUserIsAdmin(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	alice, token, err := svc.Register(ctx, registerRequest("alice", "a@x.com"))
	require.NoError(t, err)
	assert.True(t, alice.IsAdmin)
	assert.NotEmpty(t, token)

	bob, _, err := svc.Register(ctx, registerRequest("bob", "b@x.com"))
	require.NoError(t, err)
	assert.False(t, bob.IsAdmin)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest("alice", "a@x.com"))
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, registerRequest("alice", "other@x.com"))
	assert.ErrorIs(t, err, utils.ErrUsernameTaken)

	_, _, err = svc.Register(ctx, registerRequest("alice2", "a@x.com"))
	assert.ErrorIs(t, err, utils.ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest("", "a@x.com"))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, _, err = svc.Register(ctx, registerRequest("alice", "not-an-email"))
	assert.ErrorIs(t, err, utils.ErrInvalidEmail)

	_, _, err = svc.Register(ctx, registerRequest("alice", "missing-tld@host"))
	assert.ErrorIs(t, err, utils.ErrInvalidEmail)

	req := registerRequest("alice", "a@x.com")
	req.ConfirmPassword = "different1"
	_, _, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, utils.ErrPasswordMismatch)

	req = registerRequest("alice", "a@x.com")
	req.Password = "short"
	req.ConfirmPassword = "short"
	_, _, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, utils.ErrPasswordTooShort)
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, registerRequest("alice", "a@x.com"))
	require.NoError(t, err)
	assert.NotEqual(t, "password1", user.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "password1"))
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, registerRequest("alice", "a@x.com"))
	require.NoError(t, err)

	byUsername, token, err := svc.Login(ctx, request_models.LoginRequest{Username: "alice", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byUsername.ID)
	assert.NotEmpty(t, token)

	byEmail, _, err := svc.Login(ctx, request_models.LoginRequest{Username: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byEmail.ID)
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest("alice", "a@x.com"))
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(ctx, request_models.LoginRequest{Username: "nobody", Password: "password1"})
	_, _, wrongErr := svc.Login(ctx, request_models.LoginRequest{Username: "alice", Password: "wrongpass1"})

	assert.ErrorIs(t, unknownErr, utils.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, utils.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestListUsersRequiresAdmin(t *testing.T) {
	db := testutil.NewGormDB(t)
	repo := repositories.NewUserRepository(db)
	svc := NewUserService(repo)
	ctx := context.Background()

	admin, _, err := svc.Register(ctx, registerRequest("alice", "a@x.com"))
	require.NoError(t, err)
	regular, _, err := svc.Register(ctx, registerRequest("bob", "b@x.com"))
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx, admin.ID)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = svc.ListUsers(ctx, regular.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestRequireAdminGuard(t *testing.T) {
	assert.NoError(t, RequireAdmin(&db_models.User{IsAdmin: true}))
	assert.ErrorIs(t, RequireAdmin(&db_models.User{}), utils.ErrForbidden)
	assert.ErrorIs(t, RequireAdmin(nil), utils.ErrForbidden)
}
