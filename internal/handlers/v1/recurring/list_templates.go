package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
)

// ListTemplatesInput is the Huma input for listing recurring templates.
type ListTemplatesInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
}

// ListTemplatesOutput is the Huma output for listing recurring templates.
type ListTemplatesOutput struct {
	Body struct {
		Templates []TemplateResponse `json:"templates"`
	}
}

type templateLister interface {
	ListTemplates(ctx context.Context, userID, budgetID uuid.UUID) ([]service.RecurringTemplate, error)
}

// ListTemplatesHandler handles GET /v1/budget/{budgetID}/recurring.
type ListTemplatesHandler struct {
	Service templateLister
}

// NewListTemplatesHandler creates a new ListTemplatesHandler.
func NewListTemplatesHandler(svc templateLister) *ListTemplatesHandler {
	return &ListTemplatesHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListTemplatesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-recurring-templates",
		Method:      http.MethodGet,
		Path:        "/v1/budget/{budgetID}/recurring",
		Summary:     "List recurring templates",
		Description: "Lists all recurring templates of a budget, paused ones included.",
		Tags:        []string{"Recurring"},
		Security:    handlerutil.BearerSecurity,
	}, h.handle)
}

func (h *ListTemplatesHandler) handle(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}

	templates, err := h.Service.ListTemplates(ctx, userID, budgetID)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}

	output := &ListTemplatesOutput{}
	output.Body.Templates = make([]TemplateResponse, len(templates))
	for i, t := range templates {
		output.Body.Templates[i] = templateResponse(t)
	}
	return output, nil
}
