package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// CreateTemplateBody is the request body for creating a recurring template.
type CreateTemplateBody struct {
	CategoryID string `json:"categoryID" required:"true" doc:"Category UUID"`
	Title      string `json:"title" required:"true" minLength:"1" doc:"Transaction title"`
	Amount     string `json:"amount" required:"true" doc:"Decimal amount"`
	Kind       string `json:"kind" required:"true" enum:"income,expense" doc:"income or expense"`
	Frequency  string `json:"frequency" required:"true" enum:"daily,weekly,monthly,yearly" doc:"How often the template fires"`
	Day        *int   `json:"day,omitempty" doc:"Weekday 0=Monday..6=Sunday for weekly, day of month otherwise"`
}

// CreateTemplateInput is the Huma input for creating a recurring template.
type CreateTemplateInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
	Body     CreateTemplateBody
}

// CreateTemplateOutput is the Huma output for creating a recurring template.
type CreateTemplateOutput struct {
	Body TemplateResponse
}

type templateCreator interface {
	CreateTemplate(ctx context.Context, userID, budgetID uuid.UUID, create service.RecurringTemplateCreate) (service.RecurringTemplate, error)
}

// CreateTemplateHandler handles POST /v1/budget/{budgetID}/recurring.
type CreateTemplateHandler struct {
	Service templateCreator
}

// NewCreateTemplateHandler creates a new CreateTemplateHandler.
func NewCreateTemplateHandler(svc templateCreator) *CreateTemplateHandler {
	return &CreateTemplateHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateTemplateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-recurring-template",
		Method:        http.MethodPost,
		Path:          "/v1/budget/{budgetID}/recurring",
		Summary:       "Create recurring template",
		Description:   "Creates an active recurring template.",
		Tags:          []string{"Recurring"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTemplateInput(input *CreateTemplateInput) (uuid.UUID, service.RecurringTemplateCreate, error) {
	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return uuid.Nil, service.RecurringTemplateCreate{}, err
	}

	categoryID, err := handlerutil.ParseID(input.Body.CategoryID, "categoryID")
	if err != nil {
		return uuid.Nil, service.RecurringTemplateCreate{}, err
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return uuid.Nil, service.RecurringTemplateCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	return budgetID, service.RecurringTemplateCreate{
		CategoryID: categoryID,
		Title:      input.Body.Title,
		Amount:     amount,
		Kind:       sqlconfig.TransactionKind(input.Body.Kind),
		Frequency:  sqlconfig.Frequency(input.Body.Frequency),
		Day:        input.Body.Day,
	}, nil
}

func (h *CreateTemplateHandler) handle(ctx context.Context, input *CreateTemplateInput) (*CreateTemplateOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, create, err := parseCreateTemplateInput(input)
	if err != nil {
		return nil, err
	}

	created, err := h.Service.CreateTemplate(ctx, userID, budgetID, create)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &CreateTemplateOutput{Body: templateResponse(created)}, nil
}
