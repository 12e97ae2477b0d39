package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ak1058/Ai-Recipe-Maker/apperr"
	"github.com/ak1058/Ai-Recipe-Maker/auth"
	"github.com/ak1058/Ai-Recipe-Maker/repository"
	"github.com/ak1058/Ai-Recipe-Maker/schemas"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	return NewAuthService(users, testConfig()), users
}

func TestSignup_Success(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	gender := "female"
	user, err := svc.Signup(ctx, schemas.SignupRequest{
		Email:    "ana@example.com",
		Password: "plain-password",
		Name:     "Ana",
		Gender:   &gender,
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotEqual(t, "plain-password", user.HashedPassword)
	assert.True(t, auth.CheckPasswordHash("plain-password", user.HashedPassword))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, users := newAuthService(t)
	ctx := context.Background()

	req := schemas.SignupRequest{Email: "dup@example.com", Password: "pw-one", Name: "First"}
	first, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	req.Password = "pw-two"
	req.Name = "Second"
	_, err = svc.Signup(ctx, req)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	// the original record is unchanged
	stored, err := users.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", stored.Name)
	assert.True(t, auth.CheckPasswordHash("pw-one", stored.HashedPassword))
}

func TestLogin_IssuesResolvableToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, schemas.SignupRequest{
		Email: "bo@example.com", Password: "pw", Name: "Bo",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "bo@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	claims, err := auth.ParseToken(token, testConfig().SecretKey)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, schemas.SignupRequest{
		Email: "cara@example.com", Password: "right-pw", Name: "Cara",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "cara@example.com", "wrong-pw")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	_, _, err = svc.Login(ctx, "nobody@example.com", "right-pw")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}
