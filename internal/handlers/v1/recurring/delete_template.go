package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
)

// DeleteTemplateInput is the Huma input for deleting a recurring template.
type DeleteTemplateInput struct {
	BudgetID   string `path:"budgetID" doc:"Budget UUID"`
	TemplateID string `path:"templateID" doc:"Template UUID"`
}

// DeleteTemplateOutput is the Huma output for deleting a recurring template.
type DeleteTemplateOutput struct {
	Status int
}

type templateDeleter interface {
	DeleteTemplate(ctx context.Context, userID, budgetID, templateID uuid.UUID) error
}

// DeleteTemplateHandler handles DELETE /v1/budget/{budgetID}/recurring/{templateID}.
type DeleteTemplateHandler struct {
	Service templateDeleter
}

// NewDeleteTemplateHandler creates a new DeleteTemplateHandler.
func NewDeleteTemplateHandler(svc templateDeleter) *DeleteTemplateHandler {
	return &DeleteTemplateHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteTemplateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-recurring-template",
		Method:        http.MethodDelete,
		Path:          "/v1/budget/{budgetID}/recurring/{templateID}",
		Summary:       "Delete recurring template",
		Description:   "Deletes a template. Transactions already materialized from it stay.",
		Tags:          []string{"Recurring"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTemplateHandler) handle(ctx context.Context, input *DeleteTemplateInput) (*DeleteTemplateOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}
	templateID, err := handlerutil.ParseID(input.TemplateID, "templateID")
	if err != nil {
		return nil, err
	}

	if err = h.Service.DeleteTemplate(ctx, userID, budgetID, templateID); err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &DeleteTemplateOutput{Status: http.StatusNoContent}, nil
}
