package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/logging"
	"github.com/tempo-networks/budget-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body struct {
		Transactions []TransactionResponse `json:"transactions"`
	}
}

type transactionLister interface {
	ListTransactions(ctx context.Context, userID, budgetID uuid.UUID) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/budget/{budgetID}/transaction.
type ListTransactionsHandler struct {
	Service transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/budget/{budgetID}/transaction",
		Summary:     "List transactions",
		Description: "Lists a budget's transactions, newest date first.",
		Tags:        []string{"Transactions"},
		Security:    handlerutil.BearerSecurity,
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listTransactionsMs")
	transactions, err := h.Service.ListTransactions(ctx, userID, budgetID)
	stopTimer()
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	logData.AddData("transactionCount", len(transactions))

	output := &ListTransactionsOutput{}
	output.Body.Transactions = transactionResponses(transactions)
	return output, nil
}
