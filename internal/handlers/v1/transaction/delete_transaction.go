package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	BudgetID      string `path:"budgetID" doc:"Budget UUID"`
	TransactionID string `path:"transactionID" doc:"Transaction UUID"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Status int
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, userID, budgetID, transactionID uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /v1/budget/{budgetID}/transaction/{transactionID}.
type DeleteTransactionHandler struct {
	Service transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/budget/{budgetID}/transaction/{transactionID}",
		Summary:       "Delete transaction",
		Description:   "Deletes a transaction from a budget.",
		Tags:          []string{"Transactions"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}
	transactionID, err := handlerutil.ParseID(input.TransactionID, "transactionID")
	if err != nil {
		return nil, err
	}

	if err = h.Service.DeleteTransaction(ctx, userID, budgetID, transactionID); err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &DeleteTransactionOutput{Status: http.StatusNoContent}, nil
}
