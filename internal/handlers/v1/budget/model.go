package budget

import (
	"time"

	"github.com/tempo-networks/budget-server/internal/service"
)

// BudgetResponse is a budget as returned to clients.
type BudgetResponse struct {
	ID         string    `json:"id" doc:"Budget UUID"`
	OwnerID    string    `json:"ownerID" doc:"Creator's user UUID"`
	Name       string    `json:"name" doc:"Budget name"`
	BudgetType string    `json:"budgetType" enum:"personal,group" doc:"personal or group"`
	IsActive   bool      `json:"isActive" doc:"Whether the budget is active"`
	CreatedAt  time.Time `json:"createdAt" doc:"Creation time"`
}

func budgetResponse(b service.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID.String(),
		OwnerID:    b.OwnerID.String(),
		Name:       b.Name,
		BudgetType: string(b.BudgetType),
		IsActive:   b.IsActive,
		CreatedAt:  b.CreatedAt,
	}
}
