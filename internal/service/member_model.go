package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// Member represents a budget member in the service layer, joined with
// the member's user details.
type Member struct {
	ID        uuid.UUID
	BudgetID  uuid.UUID
	UserID    uuid.UUID
	Name      string
	Email     string
	Role      sqlconfig.MemberRole
	Share     decimal.Decimal
	CreatedAt time.Time
}

func memberFromStorage(row *sqlconfig.MemberWithUser) Member {
	return Member{
		ID:        row.ID,
		BudgetID:  row.BudgetID,
		UserID:    row.UserID,
		Name:      row.UserName,
		Email:     row.UserEmail,
		Role:      row.Role,
		Share:     row.Share,
		CreatedAt: row.CreatedAt,
	}
}
