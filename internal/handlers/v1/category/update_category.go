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

// UpdateCategoryBody is the request body for updating a category.
// Omitted fields are left unchanged.
type UpdateCategoryBody struct {
	Name   string `json:"name,omitempty" doc:"New category name"`
	Amount string `json:"amount,omitempty" doc:"New allocated decimal amount"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	BudgetID   string `path:"budgetID" doc:"Budget UUID"`
	CategoryID string `path:"categoryID" doc:"Category UUID"`
	Body       UpdateCategoryBody
}

// UpdateCategoryOutput is the Huma output for updating a category.
type UpdateCategoryOutput struct {
	Body CategoryResponse
}

type categoryUpdater interface {
	UpdateCategory(ctx context.Context, userID, budgetID, categoryID uuid.UUID, update service.CategoryUpdate) (service.Category, error)
}

// UpdateCategoryHandler handles PATCH /v1/budget/{budgetID}/category/{categoryID}.
type UpdateCategoryHandler struct {
	Service categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/v1/budget/{budgetID}/category/{categoryID}",
		Summary:     "Update category",
		Description: "Applies a partial update to a category.",
		Tags:        []string{"Categories"},
		Security:    handlerutil.BearerSecurity,
	}, h.handle)
}

func parseUpdateCategoryInput(input *UpdateCategoryInput) (service.CategoryUpdate, error) {
	update := service.CategoryUpdate{}
	if input.Body.Name != "" {
		name := input.Body.Name
		update.Name = &name
	}
	if input.Body.Amount != "" {
		amount, err := decimal.NewFromString(input.Body.Amount)
		if err != nil {
			return service.CategoryUpdate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		update.Amount = &amount
	}
	return update, nil
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}
	categoryID, err := handlerutil.ParseID(input.CategoryID, "categoryID")
	if err != nil {
		return nil, err
	}

	update, err := parseUpdateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	updated, err := h.Service.UpdateCategory(ctx, userID, budgetID, categoryID, update)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &UpdateCategoryOutput{Body: categoryResponse(updated)}, nil
}
