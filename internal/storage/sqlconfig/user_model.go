package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record.
type User struct {
	ID           uuid.UUID      `db:"id"`
	Email        string         `db:"email"`
	Name         string         `db:"name"`
	PasswordHash string         `db:"password_hash"`
	Avatar       sql.NullString `db:"avatar"`
	Phone        sql.NullString `db:"phone"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Email        string
	Name         string
	PasswordHash string
}

// IUsersTable defines the interface for user storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IUsersTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
