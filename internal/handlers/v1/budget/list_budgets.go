package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct{}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body struct {
		Budgets []BudgetResponse `json:"budgets"`
	}
}

type budgetLister interface {
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]service.Budget, error)
}

// ListBudgetsHandler handles GET /v1/budget.
type ListBudgetsHandler struct {
	Service budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budget",
		Summary:     "List budgets",
		Description: "Lists the budgets the caller created or joined.",
		Tags:        []string{"Budgets"},
		Security:    handlerutil.BearerSecurity,
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, _ *ListBudgetsInput) (*ListBudgetsOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgets, err := h.Service.ListBudgets(ctx, userID)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}

	output := &ListBudgetsOutput{}
	output.Body.Budgets = make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		output.Body.Budgets[i] = budgetResponse(b)
	}
	return output, nil
}
