package authn

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tempo-networks/budget-server/internal/service"
)

// mockUserService is a mock for userRegistrar and userAuthenticator.
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, name, email, password string) (service.User, string, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(service.User), args.String(1), args.Error(2)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (service.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(service.User), args.String(1), args.Error(2)
}

func TestHTTP_Register_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockUserService)
	mockSvc.On("Register", mock.Anything, "Alice", "alice@example.com", "longenough").
		Return(service.User{ID: userID, Name: "Alice", Email: "alice@example.com"}, "signed-token", nil)

	_, api := humatest.New(t)
	NewRegisterHandler(mockSvc).Register(api)

	resp := api.Post("/v1/auth/register", map[string]any{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "longenough",
	})

	require.Equal(t, http.StatusCreated, resp.Code)

	var body SessionResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body.User.ID)
	assert.Equal(t, "signed-token", body.Token)
}

func TestHTTP_Register_EmailTaken(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Register", mock.Anything, "Alice", "alice@example.com", "longenough").
		Return(service.User{}, "", service.ErrEmailTaken)

	_, api := humatest.New(t)
	NewRegisterHandler(mockSvc).Register(api)

	resp := api.Post("/v1/auth/register", map[string]any{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "longenough",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_Register_ShortPasswordRejected(t *testing.T) {
	mockSvc := new(mockUserService)

	_, api := humatest.New(t)
	NewRegisterHandler(mockSvc).Register(api)

	resp := api.Post("/v1/auth/register", map[string]any{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "short",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_Login_BadCredentials(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Login", mock.Anything, "alice@example.com", "wrong-password").
		Return(service.User{}, "", service.ErrInvalidCredentials)

	_, api := humatest.New(t)
	NewLoginHandler(mockSvc).Register(api)

	resp := api.Post("/v1/auth/login", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
