package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ak1058/Ai-Recipe-Maker/apperr"
	"github.com/ak1058/Ai-Recipe-Maker/auth"
	"github.com/ak1058/Ai-Recipe-Maker/config"
	"github.com/ak1058/Ai-Recipe-Maker/models"
	"github.com/ak1058/Ai-Recipe-Maker/repository"
	"github.com/ak1058/Ai-Recipe-Maker/schemas"
)

// AuthService owns signup, login and token issuance.
type AuthService struct {
	users *repository.UserRepository
	cfg   *config.Config
}

func NewAuthService(users *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Signup registers a new account. A duplicate email yields a Conflict
// whether it is caught by the pre-check or by the unique constraint.
func (s *AuthService) Signup(ctx context.Context, req schemas.SignupRequest) (*models.User, error) {
	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperr.New(apperr.Conflict, "Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.Internal, "Database error", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to hash password", err)
	}

	user := &models.User{
		Email:          req.Email,
		HashedPassword: hash,
		Name:           req.Name,
		Gender:         req.Gender,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.New(apperr.Conflict, "Email already registered")
		}
		return nil, apperr.Wrap(apperr.Internal, "Database error", err)
	}
	return user, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.New(apperr.Unauthorized, "Invalid credentials")
		}
		return nil, "", apperr.Wrap(apperr.Internal, "Database error", err)
	}

	if !auth.CheckPasswordHash(password, user.HashedPassword) {
		return nil, "", apperr.New(apperr.Unauthorized, "Invalid credentials")
	}

	token, err := auth.GenerateToken(user.ID, s.cfg.SecretKey, s.cfg.Algorithm, s.cfg.TokenLifetime)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "Token creation failed", err)
	}

	return user, token, nil
}
