package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymdesk/internal/apperr"
	"gymdesk/internal/auth"
	"gymdesk/internal/db"
)

var (
	ErrUsernameTaken       = apperr.Conflict("Username already exists", nil)
	ErrInvalidCredentials  = apperr.Unauthorized("Invalid username or password")
	ErrInvalidRefreshToken = apperr.Unauthorized("Invalid or expired refresh token")
	ErrUserNotFound        = apperr.NotFound("User not found")
)

// Revoker invalidates an access token before it expires.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetByID(ctx context.Context, userID int) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
}

type service struct {
	repo      Repository
	revoker   Revoker
	jwtSecret string
}

func NewService(repo Repository, revoker Revoker, jwtSecret string) Service {
	return &service{
		repo:      repo,
		revoker:   revoker,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	exists, err := s.repo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrUsernameTaken
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	user, err := s.repo.Create(ctx, &User{
		Username: req.Username,
		Password: passwordHash,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     RoleOwner,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, "", "", ErrUsernameTaken
		}
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(user.ID, user.Username, user.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", "", err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(user.ID, user.Username, user.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.revoker == nil || tokenID == "" {
		return nil
	}
	return s.revoker.Revoke(ctx, tokenID, expiresAt)
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	newAccessToken, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, ErrInvalidRefreshToken
	}

	user, err := s.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, user, nil
}
