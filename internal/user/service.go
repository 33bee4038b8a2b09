// Package user implements profile reads and mutations for authenticated
// members.
package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ksaito/giftapi/internal/auth"
	"github.com/ksaito/giftapi/internal/config"
)

// profileStore abstracts the persistence layer.
type profileStore interface {
	FindByID(ctx context.Context, id string) (auth.User, error)
	Update(ctx context.Context, user auth.User) error
}

// Service encapsulates profile use cases.
type Service struct {
	store profileStore
	cfg   config.AuthConfig
	log   *zap.Logger
}

// NewService creates a Service with dependencies.
func NewService(store profileStore, cfg config.AuthConfig, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, cfg: cfg, log: log}
}

// UpdateProfileInput carries the mutable profile fields. An empty string
// means "not provided", never "clear field".
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	BirthDate string
}

// GetProfile fetches the user bound to id, hash stripped.
func (s *Service) GetProfile(ctx context.Context, id string) (auth.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return auth.User{}, err
	}
	return user.Sanitized(), nil
}

// UpdateProfile overwrites the provided fields and keeps the rest.
func (s *Service) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (auth.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return auth.User{}, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.BirthDate != "" {
		user.BirthDate = input.BirthDate
	}

	if err := s.store.Update(ctx, user); err != nil {
		return auth.User{}, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("profile updated", zap.String("userID", id))

	return user.Sanitized(), nil
}

// ChangePassword verifies the current password and stores a fresh hash
// of the new one. The new password's length is not validated here.
func (s *Service) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hashed)
	if err := s.store.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	s.log.Info("password changed", zap.String("userID", id))

	return nil
}
