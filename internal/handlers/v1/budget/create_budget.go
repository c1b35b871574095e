package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	Name       string `json:"name" required:"true" minLength:"1" doc:"Budget name"`
	BudgetType string `json:"budgetType" required:"true" enum:"personal,group" doc:"personal or group"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Body BudgetResponse
}

type budgetCreator interface {
	CreateBudget(ctx context.Context, userID uuid.UUID, name string, budgetType sqlconfig.BudgetType) (service.Budget, error)
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	Service budgetCreator
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/v1/budget",
		Summary:       "Create budget",
		Description:   "Creates a budget. Group budgets start with the caller as owner.",
		Tags:          []string{"Budgets"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := h.Service.CreateBudget(ctx, userID, input.Body.Name, sqlconfig.BudgetType(input.Body.BudgetType))
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &CreateBudgetOutput{Body: budgetResponse(created)}, nil
}
