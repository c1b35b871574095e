package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body struct {
		Categories []CategoryResponse `json:"categories"`
	}
}

type categoryLister interface {
	ListCategories(ctx context.Context, userID, budgetID uuid.UUID) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/budget/{budgetID}/category.
type ListCategoriesHandler struct {
	Service categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/budget/{budgetID}/category",
		Summary:     "List categories",
		Description: "Lists all categories of a budget.",
		Tags:        []string{"Categories"},
		Security:    handlerutil.BearerSecurity,
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}

	categories, err := h.Service.ListCategories(ctx, userID, budgetID)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}

	output := &ListCategoriesOutput{}
	output.Body.Categories = make([]CategoryResponse, len(categories))
	for i, c := range categories {
		output.Body.Categories[i] = categoryResponse(c)
	}
	return output, nil
}
