package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	CategoryID   string `json:"categoryID" required:"true" doc:"Category UUID"`
	Title        string `json:"title" required:"true" minLength:"1" doc:"Transaction title"`
	Amount       string `json:"amount" required:"true" doc:"Decimal amount"`
	Kind         string `json:"kind" required:"true" enum:"income,expense" doc:"income or expense"`
	Date         string `json:"date,omitempty" doc:"Occurrence date YYYY-MM-DD, defaults to today"`
	Comment      string `json:"comment,omitempty" doc:"Free-form comment"`
	PaidByUserID string `json:"paidByUserID,omitempty" doc:"Paying member's user UUID"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
	Body     CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body TransactionResponse
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, userID, budgetID uuid.UUID, create service.TransactionCreate) (service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/budget/{budgetID}/transaction.
type CreateTransactionHandler struct {
	Service transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/budget/{budgetID}/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a manual transaction in a budget.",
		Tags:          []string{"Transactions"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (uuid.UUID, service.TransactionCreate, error) {
	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return uuid.Nil, service.TransactionCreate{}, err
	}

	categoryID, err := handlerutil.ParseID(input.Body.CategoryID, "categoryID")
	if err != nil {
		return uuid.Nil, service.TransactionCreate{}, err
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return uuid.Nil, service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	create := service.TransactionCreate{
		CategoryID: categoryID,
		Title:      input.Body.Title,
		Amount:     amount,
		Kind:       sqlconfig.TransactionKind(input.Body.Kind),
		Comment:    input.Body.Comment,
	}

	if input.Body.Date != "" {
		date, err := time.ParseInLocation("2006-01-02", input.Body.Date, time.UTC)
		if err != nil {
			return uuid.Nil, service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		create.Date = date
	}

	if input.Body.PaidByUserID != "" {
		payerID, err := handlerutil.ParseID(input.Body.PaidByUserID, "paidByUserID")
		if err != nil {
			return uuid.Nil, service.TransactionCreate{}, err
		}
		create.PaidByUserID = &payerID
	}

	return budgetID, create, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	created, err := h.Service.CreateTransaction(ctx, userID, budgetID, create)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &CreateTransactionOutput{Body: transactionResponse(created)}, nil
}
