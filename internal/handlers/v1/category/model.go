package category

import (
	"time"

	"github.com/tempo-networks/budget-server/internal/service"
)

// CategoryResponse is a category as returned to clients.
type CategoryResponse struct {
	ID        string    `json:"id" doc:"Category UUID"`
	BudgetID  string    `json:"budgetID" doc:"Budget UUID"`
	ParentID  *string   `json:"parentID,omitempty" doc:"Parent category UUID, absent for roots"`
	Name      string    `json:"name" doc:"Category name"`
	Amount    string    `json:"amount" doc:"Allocated decimal amount"`
	CreatedAt time.Time `json:"createdAt" doc:"Creation time"`
}

func categoryResponse(c service.Category) CategoryResponse {
	response := CategoryResponse{
		ID:        c.ID.String(),
		BudgetID:  c.BudgetID.String(),
		Name:      c.Name,
		Amount:    c.Amount.String(),
		CreatedAt: c.CreatedAt,
	}
	if c.ParentID != nil {
		parentID := c.ParentID.String()
		response.ParentID = &parentID
	}
	return response
}
