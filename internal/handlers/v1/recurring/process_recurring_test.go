package recurring

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tempo-networks/budget-server/internal/auth"
	"github.com/tempo-networks/budget-server/internal/service"
)

const testSecret = "handler-test-secret"

// mockRecurringService is a mock for recurringProcessor.
type mockRecurringService struct {
	mock.Mock
}

func (m *mockRecurringService) ProcessRecurring(ctx context.Context, userID, budgetID uuid.UUID) ([]service.Transaction, error) {
	args := m.Called(ctx, userID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func newProcessTestAPI(t *testing.T, svc recurringProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.NewMiddleware(api, testSecret))
	NewProcessRecurringHandler(svc).Register(api)
	return api
}

func bearer(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := auth.IssueToken(testSecret, userID)
	require.NoError(t, err)
	return "Authorization: Bearer " + token
}

func TestHTTP_ProcessRecurring_ReturnsCreated(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockRecurringService)
	mockSvc.On("ProcessRecurring", mock.Anything, userID, budgetID).Return([]service.Transaction{
		{
			ID:          uuid.Must(uuid.NewV4()),
			BudgetID:    budgetID,
			CategoryID:  categoryID,
			Title:       "Rent",
			Amount:      decimal.RequireFromString("1200.00"),
			Kind:        "expense",
			Date:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			Comment:     "Auto-generated from recurring: Rent",
			IsGenerated: true,
		},
	}, nil)

	api := newProcessTestAPI(t, mockSvc)
	resp := api.Post("/v1/budget/"+budgetID.String()+"/recurring/process", bearer(t, userID))

	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Created []CreatedTransaction `json:"created"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Created, 1)
	assert.Equal(t, "Rent", body.Created[0].Title)
	assert.Equal(t, "2025-03-01", body.Created[0].Date)
	assert.Equal(t, "Auto-generated from recurring: Rent", body.Created[0].Comment)
}

func TestHTTP_ProcessRecurring_NothingDue(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockRecurringService)
	mockSvc.On("ProcessRecurring", mock.Anything, userID, budgetID).
		Return([]service.Transaction{}, nil)

	api := newProcessTestAPI(t, mockSvc)
	resp := api.Post("/v1/budget/"+budgetID.String()+"/recurring/process", bearer(t, userID))

	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Created []CreatedTransaction `json:"created"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Empty(t, body.Created)
}

func TestHTTP_ProcessRecurring_UnknownBudget(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockRecurringService)
	mockSvc.On("ProcessRecurring", mock.Anything, userID, budgetID).
		Return(nil, service.ErrNotFound)

	api := newProcessTestAPI(t, mockSvc)
	resp := api.Post("/v1/budget/"+budgetID.String()+"/recurring/process", bearer(t, userID))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
