package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name     string `json:"name" required:"true" minLength:"1" doc:"Category name"`
	Amount   string `json:"amount" required:"true" doc:"Allocated decimal amount"`
	ParentID string `json:"parentID,omitempty" doc:"Parent category UUID, omit for a root category"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
	Body     CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Body CategoryResponse
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, userID, budgetID uuid.UUID, parentID *uuid.UUID, name string, amount decimal.Decimal) (service.Category, error)
}

// CreateCategoryHandler handles POST /v1/budget/{budgetID}/category.
type CreateCategoryHandler struct {
	Service categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/budget/{budgetID}/category",
		Summary:       "Create category",
		Description:   "Creates a category. Sub-categories roll their amounts up into the parent.",
		Tags:          []string{"Categories"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateCategoryInput(input *CreateCategoryInput) (uuid.UUID, *uuid.UUID, decimal.Decimal, error) {
	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return uuid.Nil, nil, decimal.Zero, err
	}

	var parentID *uuid.UUID
	if input.Body.ParentID != "" {
		parsed, err := handlerutil.ParseID(input.Body.ParentID, "parentID")
		if err != nil {
			return uuid.Nil, nil, decimal.Zero, err
		}
		parentID = &parsed
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return uuid.Nil, nil, decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	return budgetID, parentID, amount, nil
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, parentID, amount, err := parseCreateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	created, err := h.Service.CreateCategory(ctx, userID, budgetID, parentID, input.Body.Name, amount)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &CreateCategoryOutput{Body: categoryResponse(created)}, nil
}
