package authn

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
)

// RegisterBody is the request body for registering a user.
type RegisterBody struct {
	Name     string `json:"name" required:"true" minLength:"1" doc:"Display name"`
	Email    string `json:"email" required:"true" format:"email" doc:"Email address"`
	Password string `json:"password" required:"true" minLength:"8" doc:"Password, at least 8 characters"`
}

// RegisterInput is the Huma input for registering a user.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for registering a user.
type RegisterOutput struct {
	Body SessionResponse
}

type userRegistrar interface {
	Register(ctx context.Context, name, email, password string) (service.User, string, error)
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	Service userRegistrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc userRegistrar) *RegisterHandler {
	return &RegisterHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/v1/auth/register",
		Summary:       "Register",
		Description:   "Creates a user account and returns a session token.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	user, token, err := h.Service.Register(ctx, input.Body.Name, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}

	return &RegisterOutput{Body: sessionResponse(user, token)}, nil
}
