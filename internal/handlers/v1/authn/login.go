package authn

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" format:"email" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body SessionResponse
}

type userAuthenticator interface {
	Login(ctx context.Context, email, password string) (service.User, string, error)
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	Service userAuthenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc userAuthenticator) *LoginHandler {
	return &LoginHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Description: "Verifies credentials and returns a session token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, token, err := h.Service.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}

	return &LoginOutput{Body: sessionResponse(user, token)}, nil
}
