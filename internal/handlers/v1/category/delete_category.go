package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	BudgetID   string `path:"budgetID" doc:"Budget UUID"`
	CategoryID string `path:"categoryID" doc:"Category UUID"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int
}

type categoryDeleter interface {
	DeleteCategory(ctx context.Context, userID, budgetID, categoryID uuid.UUID) error
}

// DeleteCategoryHandler handles DELETE /v1/budget/{budgetID}/category/{categoryID}.
type DeleteCategoryHandler struct {
	Service categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/budget/{budgetID}/category/{categoryID}",
		Summary:       "Delete category",
		Description:   "Deletes a category and its transactions.",
		Tags:          []string{"Categories"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
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

	if err = h.Service.DeleteCategory(ctx, userID, budgetID, categoryID); err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &DeleteCategoryOutput{Status: http.StatusNoContent}, nil
}
