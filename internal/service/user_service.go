package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/auth"
	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// UserService handles registration and authentication.
type UserService struct {
	storage   *storage.Storage
	jwtSecret string
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, jwtSecret string) *UserService {
	return &UserService{storage: store, jwtSecret: jwtSecret}
}

// Register creates a user and returns it with a signed token.
func (s *UserService) Register(ctx context.Context, name, email, password string) (User, string, error) {
	_, err := s.storage.Users.FindByEmail(ctx, email)
	if err == nil {
		return User{}, "", ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return User{}, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, "", err
	}

	row, err := s.storage.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		return User{}, "", err
	}

	token, err := auth.IssueToken(s.jwtSecret, row.ID)
	if err != nil {
		return User{}, "", err
	}
	return userFromStorage(row), token, nil
}

// Login verifies credentials and returns the user with a signed token.
func (s *UserService) Login(ctx context.Context, email, password string) (User, string, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return User{}, "", err
	}

	if !auth.CheckPassword(row.PasswordHash, password) {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.jwtSecret, row.ID)
	if err != nil {
		return User{}, "", err
	}
	return userFromStorage(row), token, nil
}

// ChangePassword replaces the user's password after verifying the current one.
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	row, err := s.storage.Users.FindByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !auth.CheckPassword(row.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.storage.Users.UpdatePasswordHash(ctx, userID, hash)
}
