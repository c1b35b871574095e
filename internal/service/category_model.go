package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// Category represents a category in the service layer. ParentID is nil
// for root categories.
type Category struct {
	ID        uuid.UUID
	BudgetID  uuid.UUID
	ParentID  *uuid.UUID
	Name      string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// CategoryUpdate carries a partial category update. Nil fields are left
// unchanged.
type CategoryUpdate struct {
	Name   *string
	Amount *decimal.Decimal
}

func categoryFromStorage(row *sqlconfig.Category) Category {
	category := Category{
		ID:        row.ID,
		BudgetID:  row.BudgetID,
		Name:      row.Name,
		Amount:    row.Amount,
		CreatedAt: row.CreatedAt,
	}
	if row.ParentID.Valid {
		parentID := row.ParentID.UUID
		category.ParentID = &parentID
	}
	return category
}
