package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
)

// ToggleTemplateBody is the request body for pausing or resuming a template.
type ToggleTemplateBody struct {
	Active bool `json:"active" doc:"true resumes the template, false pauses it"`
}

// ToggleTemplateInput is the Huma input for pausing or resuming a template.
type ToggleTemplateInput struct {
	BudgetID   string `path:"budgetID" doc:"Budget UUID"`
	TemplateID string `path:"templateID" doc:"Template UUID"`
	Body       ToggleTemplateBody
}

// ToggleTemplateOutput is the Huma output for pausing or resuming a template.
type ToggleTemplateOutput struct {
	Status int
}

type templateToggler interface {
	SetTemplateActive(ctx context.Context, userID, budgetID, templateID uuid.UUID, active bool) error
}

// ToggleTemplateHandler handles PATCH /v1/budget/{budgetID}/recurring/{templateID}.
type ToggleTemplateHandler struct {
	Service templateToggler
}

// NewToggleTemplateHandler creates a new ToggleTemplateHandler.
func NewToggleTemplateHandler(svc templateToggler) *ToggleTemplateHandler {
	return &ToggleTemplateHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ToggleTemplateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "toggle-recurring-template",
		Method:        http.MethodPatch,
		Path:          "/v1/budget/{budgetID}/recurring/{templateID}",
		Summary:       "Pause or resume recurring template",
		Description:   "Paused templates are skipped by materialization but keep their history.",
		Tags:          []string{"Recurring"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *ToggleTemplateHandler) handle(ctx context.Context, input *ToggleTemplateInput) (*ToggleTemplateOutput, error) {
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

	if err = h.Service.SetTemplateActive(ctx, userID, budgetID, templateID, input.Body.Active); err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &ToggleTemplateOutput{Status: http.StatusNoContent}, nil
}
