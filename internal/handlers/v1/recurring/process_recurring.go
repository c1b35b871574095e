package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/logging"
	"github.com/tempo-networks/budget-server/internal/service"
)

// ProcessRecurringInput is the Huma input for materializing recurring templates.
type ProcessRecurringInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
}

// ProcessRecurringOutput is the Huma output for materializing recurring templates.
type ProcessRecurringOutput struct {
	Body struct {
		Created []CreatedTransaction `json:"created" doc:"Transactions materialized by this run"`
	}
}

// CreatedTransaction is a transaction materialized from a template.
type CreatedTransaction struct {
	ID         string `json:"id" doc:"Transaction UUID"`
	CategoryID string `json:"categoryID" doc:"Category UUID"`
	Title      string `json:"title" doc:"Transaction title"`
	Amount     string `json:"amount" doc:"Decimal amount"`
	Kind       string `json:"kind" doc:"income or expense"`
	Date       string `json:"date" doc:"Occurrence date, YYYY-MM-DD"`
	Comment    string `json:"comment" doc:"Generated comment naming the template"`
}

type recurringProcessor interface {
	ProcessRecurring(ctx context.Context, userID, budgetID uuid.UUID) ([]service.Transaction, error)
}

// ProcessRecurringHandler handles POST /v1/budget/{budgetID}/recurring/process.
type ProcessRecurringHandler struct {
	Service recurringProcessor
}

// NewProcessRecurringHandler creates a new ProcessRecurringHandler.
func NewProcessRecurringHandler(svc recurringProcessor) *ProcessRecurringHandler {
	return &ProcessRecurringHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ProcessRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "process-recurring",
		Method:      http.MethodPost,
		Path:        "/v1/budget/{budgetID}/recurring/process",
		Summary:     "Materialize recurring templates",
		Description: "Materializes every active template for the current month up to today. Safe to call repeatedly.",
		Tags:        []string{"Recurring"},
		Security:    handlerutil.BearerSecurity,
	}, h.handle)
}

func (h *ProcessRecurringHandler) handle(ctx context.Context, input *ProcessRecurringInput) (*ProcessRecurringOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("processRecurringMs")
	created, err := h.Service.ProcessRecurring(ctx, userID, budgetID)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	logData.AddData("createdCount", len(created))

	output := &ProcessRecurringOutput{}
	output.Body.Created = make([]CreatedTransaction, len(created))
	for i, t := range created {
		output.Body.Created[i] = CreatedTransaction{
			ID:         t.ID.String(),
			CategoryID: t.CategoryID.String(),
			Title:      t.Title,
			Amount:     t.Amount.String(),
			Kind:       string(t.Kind),
			Date:       t.Date.Format("2006-01-02"),
			Comment:    t.Comment,
		}
	}
	return output, nil
}
