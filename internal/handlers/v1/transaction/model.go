package transaction

import (
	"time"

	"github.com/tempo-networks/budget-server/internal/service"
)

// TransactionResponse is a transaction as returned to clients.
type TransactionResponse struct {
	ID           string    `json:"id" doc:"Transaction UUID"`
	BudgetID     string    `json:"budgetID" doc:"Budget UUID"`
	CategoryID   string    `json:"categoryID" doc:"Category UUID"`
	Title        string    `json:"title" doc:"Transaction title"`
	Amount       string    `json:"amount" doc:"Decimal amount"`
	Kind         string    `json:"kind" enum:"income,expense" doc:"income or expense"`
	Date         string    `json:"date" doc:"Occurrence date, YYYY-MM-DD"`
	Comment      string    `json:"comment,omitempty" doc:"Free-form comment"`
	IsGenerated  bool      `json:"isGenerated" doc:"Whether the row was materialized from a recurring template"`
	PaidByUserID *string   `json:"paidByUserID,omitempty" doc:"Paying member's user UUID"`
	CreatedAt    time.Time `json:"createdAt" doc:"Creation time"`
}

func transactionResponse(t service.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          t.ID.String(),
		BudgetID:    t.BudgetID.String(),
		CategoryID:  t.CategoryID.String(),
		Title:       t.Title,
		Amount:      t.Amount.String(),
		Kind:        string(t.Kind),
		Date:        t.Date.Format("2006-01-02"),
		Comment:     t.Comment,
		IsGenerated: t.IsGenerated,
		CreatedAt:   t.CreatedAt,
	}
	if t.PaidByUserID != nil {
		payerID := t.PaidByUserID.String()
		response.PaidByUserID = &payerID
	}
	return response
}

func transactionResponses(transactions []service.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = transactionResponse(t)
	}
	return responses
}
