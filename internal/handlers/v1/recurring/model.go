package recurring

import (
	"time"

	"github.com/tempo-networks/budget-server/internal/service"
)

// TemplateResponse is a recurring template as returned to clients.
type TemplateResponse struct {
	ID         string    `json:"id" doc:"Template UUID"`
	BudgetID   string    `json:"budgetID" doc:"Budget UUID"`
	CategoryID string    `json:"categoryID" doc:"Category UUID"`
	Title      string    `json:"title" doc:"Transaction title"`
	Amount     string    `json:"amount" doc:"Decimal amount"`
	Kind       string    `json:"kind" enum:"income,expense" doc:"income or expense"`
	Frequency  string    `json:"frequency" enum:"daily,weekly,monthly,yearly" doc:"How often the template fires"`
	Day        *int      `json:"day,omitempty" doc:"Weekday 0=Monday..6=Sunday for weekly, day of month otherwise"`
	Active     bool      `json:"active" doc:"Whether materialization considers the template"`
	CreatedAt  time.Time `json:"createdAt" doc:"Creation time"`
}

func templateResponse(t service.RecurringTemplate) TemplateResponse {
	return TemplateResponse{
		ID:         t.ID.String(),
		BudgetID:   t.BudgetID.String(),
		CategoryID: t.CategoryID.String(),
		Title:      t.Title,
		Amount:     t.Amount.String(),
		Kind:       string(t.Kind),
		Frequency:  string(t.Frequency),
		Day:        t.Day,
		Active:     t.Active,
		CreatedAt:  t.CreatedAt,
	}
}
