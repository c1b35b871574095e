package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// Budget represents a budget in the service layer.
type Budget struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	BudgetType sqlconfig.BudgetType
	IsActive   bool
	CreatedAt  time.Time
}

func budgetFromStorage(row *sqlconfig.Budget) Budget {
	return Budget{
		ID:         row.ID,
		OwnerID:    row.UserID,
		Name:       row.Name,
		BudgetType: row.BudgetType,
		IsActive:   row.IsActive,
		CreatedAt:  row.CreatedAt,
	}
}
