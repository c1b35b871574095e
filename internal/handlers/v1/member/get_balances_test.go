package member

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

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

// mockBalanceService is a mock for balanceComputer.
type mockBalanceService struct {
	mock.Mock
}

func (m *mockBalanceService) ComputeBalances(ctx context.Context, userID, budgetID uuid.UUID) (service.BudgetBalances, error) {
	args := m.Called(ctx, userID, budgetID)
	return args.Get(0).(service.BudgetBalances), args.Error(1)
}

func newBalancesTestAPI(t *testing.T, svc balanceComputer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.NewMiddleware(api, testSecret))
	NewGetBalancesHandler(svc).Register(api)
	return api
}

func bearer(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := auth.IssueToken(testSecret, userID)
	require.NoError(t, err)
	return "Authorization: Bearer " + token
}

func TestHTTP_GetBalances_Success(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	aliceID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockBalanceService)
	mockSvc.On("ComputeBalances", mock.Anything, userID, budgetID).Return(service.BudgetBalances{
		TotalAllocation: decimal.RequireFromString("1000.00"),
		Members: []service.MemberBalance{
			{
				UserID:  aliceID,
				Name:    "alice",
				Email:   "alice@example.com",
				Share:   decimal.RequireFromString("60"),
				Due:     decimal.RequireFromString("600.00"),
				Paid:    decimal.RequireFromString("700.00"),
				Balance: decimal.RequireFromString("100.00"),
			},
		},
	}, nil)

	api := newBalancesTestAPI(t, mockSvc)
	resp := api.Get("/v1/budget/"+budgetID.String()+"/balances", bearer(t, userID))

	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		TotalAllocation string            `json:"totalAllocation"`
		Balances        []BalanceResponse `json:"balances"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "1000", body.TotalAllocation)
	require.Len(t, body.Balances, 1)
	assert.Equal(t, "alice", body.Balances[0].Name)
	assert.Equal(t, "600", body.Balances[0].Due)
	assert.Equal(t, "100", body.Balances[0].Balance)
}

func TestHTTP_GetBalances_PersonalBudget(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockBalanceService)
	mockSvc.On("ComputeBalances", mock.Anything, userID, budgetID).
		Return(service.BudgetBalances{}, service.ErrNotGroupBudget)

	api := newBalancesTestAPI(t, mockSvc)
	resp := api.Get("/v1/budget/"+budgetID.String()+"/balances", bearer(t, userID))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
