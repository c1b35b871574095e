package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// Invitation represents a budget invitation in the service layer, joined
// with budget and inviter names for display.
type Invitation struct {
	ID           uuid.UUID
	BudgetID     uuid.UUID
	BudgetName   string
	InviterName  string
	InviteeEmail string
	Role         sqlconfig.MemberRole
	Status       sqlconfig.InvitationStatus
	CreatedAt    time.Time
}

func invitationFromStorage(row *sqlconfig.InvitationWithDetails) Invitation {
	return Invitation{
		ID:           row.ID,
		BudgetID:     row.BudgetID,
		BudgetName:   row.BudgetName,
		InviterName:  row.InviterName,
		InviteeEmail: row.InviteeEmail,
		Role:         row.Role,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
	}
}
