package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
)

// GetBalancesInput is the Huma input for fetching settlement balances.
type GetBalancesInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
}

// GetBalancesOutput is the Huma output for fetching settlement balances.
type GetBalancesOutput struct {
	Body struct {
		TotalAllocation string            `json:"totalAllocation" doc:"Sum of root category allocations"`
		Balances        []BalanceResponse `json:"balances"`
	}
}

type balanceComputer interface {
	ComputeBalances(ctx context.Context, userID, budgetID uuid.UUID) (service.BudgetBalances, error)
}

// GetBalancesHandler handles GET /v1/budget/{budgetID}/balances.
type GetBalancesHandler struct {
	Service balanceComputer
}

// NewGetBalancesHandler creates a new GetBalancesHandler.
func NewGetBalancesHandler(svc balanceComputer) *GetBalancesHandler {
	return &GetBalancesHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetBalancesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balances",
		Method:      http.MethodGet,
		Path:        "/v1/budget/{budgetID}/balances",
		Summary:     "Get settlement balances",
		Description: "Computes per-member due, paid, and balance for a group budget.",
		Tags:        []string{"Members"},
		Security:    handlerutil.BearerSecurity,
	}, h.handle)
}

func (h *GetBalancesHandler) handle(ctx context.Context, input *GetBalancesInput) (*GetBalancesOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}

	balances, err := h.Service.ComputeBalances(ctx, userID, budgetID)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}

	output := &GetBalancesOutput{}
	output.Body.TotalAllocation = balances.TotalAllocation.String()
	output.Body.Balances = make([]BalanceResponse, len(balances.Members))
	for i, b := range balances.Members {
		output.Body.Balances[i] = balanceResponse(b)
	}
	return output, nil
}
