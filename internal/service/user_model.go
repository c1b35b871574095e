package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// User represents a user in the service layer. The password hash never
// leaves the storage layer.
type User struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func userFromStorage(row *sqlconfig.User) User {
	return User{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}
}
