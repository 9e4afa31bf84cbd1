package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/events"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/hash"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/repo"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Producer  *events.Producer
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *models.User
}

func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("signup_error", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUserIfNotExists(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			return nil, fmt.Errorf("%w: username already exists", ErrConflict)
		}
		return nil, err
	}

	if err := s.Producer.Publish(ctx, events.TopicUserEvents, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if repo.NotFound(err) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "bad password")
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, exp, err := tokens.NewAccessToken(user.ID, s.JWTSecret, time.Now())
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	if err := s.Producer.Publish(ctx, events.TopicUserEvents, fmt.Sprint(user.ID), map[string]any{
		"type":    "user_logged_in",
		"user_id": user.ID,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	return &LoginResult{AccessToken: token, ExpiresAt: exp, User: user}, nil
}

// Logout records the token's jti so the auth middleware rejects it from now
// on. Revoked rows are never swept.
func (s *AuthService) Logout(ctx context.Context, jti, tokenType string, userID *uint) error {
	if jti == "" {
		return fmt.Errorf("%w: token id missing", ErrValidation)
	}
	return s.Repo.BlockToken(ctx, &models.TokenBlocklist{
		JTI:       jti,
		Type:      tokenType,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *AuthService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, id)
	if err != nil {
		if repo.NotFound(err) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return user, nil
}

// UpdateUserInput carries per-field profile updates; empty fields are left
// alone.
type UpdateUserInput struct {
	Username    string
	Password    string
	Email       string
	AvatarImage string
}

// UpdateUser lets a caller modify only their own profile.
func (s *AuthService) UpdateUser(ctx context.Context, callerID, targetID uint, in UpdateUserInput) (*models.User, error) {
	if callerID != targetID {
		return nil, fmt.Errorf("%w: you can only update your own profile", ErrUnauthorized)
	}

	user, err := s.Repo.GetUserByID(ctx, targetID)
	if err != nil {
		if repo.NotFound(err) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, targetID)
		}
		return nil, err
	}

	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.AvatarImage != "" {
		user.AvatarImage = in.AvatarImage
	}
	if in.Password != "" {
		pwHash, err := hash.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = pwHash
	}

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
