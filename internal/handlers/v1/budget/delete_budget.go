package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
)

// DeleteBudgetInput is the Huma input for deleting a budget.
type DeleteBudgetInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
}

// DeleteBudgetOutput is the Huma output for deleting a budget.
type DeleteBudgetOutput struct {
	Status int
}

type budgetDeleter interface {
	DeleteBudget(ctx context.Context, budgetID, userID uuid.UUID) error
}

// DeleteBudgetHandler handles DELETE /v1/budget/{budgetID}.
type DeleteBudgetHandler struct {
	Service budgetDeleter
}

// NewDeleteBudgetHandler creates a new DeleteBudgetHandler.
func NewDeleteBudgetHandler(svc budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-budget",
		Method:        http.MethodDelete,
		Path:          "/v1/budget/{budgetID}",
		Summary:       "Delete budget",
		Description:   "Deletes a budget and everything under it.",
		Tags:          []string{"Budgets"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}

	if err = h.Service.DeleteBudget(ctx, budgetID, userID); err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &DeleteBudgetOutput{Status: http.StatusNoContent}, nil
}
