package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
)

// GetBudgetInput is the Huma input for fetching a budget.
type GetBudgetInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
}

// GetBudgetOutput is the Huma output for fetching a budget.
type GetBudgetOutput struct {
	Body BudgetResponse
}

type budgetGetter interface {
	GetBudget(ctx context.Context, budgetID, userID uuid.UUID) (service.Budget, error)
}

// GetBudgetHandler handles GET /v1/budget/{budgetID}.
type GetBudgetHandler struct {
	Service budgetGetter
}

// NewGetBudgetHandler creates a new GetBudgetHandler.
func NewGetBudgetHandler(svc budgetGetter) *GetBudgetHandler {
	return &GetBudgetHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget/{budgetID}",
		Summary:     "Get budget",
		Description: "Fetches a single budget the caller has access to.",
		Tags:        []string{"Budgets"},
		Security:    handlerutil.BearerSecurity,
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}

	found, err := h.Service.GetBudget(ctx, budgetID, userID)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &GetBudgetOutput{Body: budgetResponse(found)}, nil
}
