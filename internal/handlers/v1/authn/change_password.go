package authn

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
)

// ChangePasswordBody is the request body for changing a password.
type ChangePasswordBody struct {
	CurrentPassword string `json:"currentPassword" required:"true" doc:"Current password"`
	NewPassword     string `json:"newPassword" required:"true" minLength:"8" doc:"New password, at least 8 characters"`
}

// ChangePasswordInput is the Huma input for changing a password.
type ChangePasswordInput struct {
	Body ChangePasswordBody
}

// ChangePasswordOutput is the Huma output for changing a password.
type ChangePasswordOutput struct {
	Status int
}

type passwordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// ChangePasswordHandler handles POST /v1/auth/password.
type ChangePasswordHandler struct {
	Service passwordChanger
}

// NewChangePasswordHandler creates a new ChangePasswordHandler.
func NewChangePasswordHandler(svc passwordChanger) *ChangePasswordHandler {
	return &ChangePasswordHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ChangePasswordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "change-password",
		Method:        http.MethodPost,
		Path:          "/v1/auth/password",
		Summary:       "Change password",
		Description:   "Replaces the caller's password after verifying the current one.",
		Tags:          []string{"Auth"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *ChangePasswordHandler) handle(ctx context.Context, input *ChangePasswordInput) (*ChangePasswordOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.Service.ChangePassword(ctx, userID, input.Body.CurrentPassword, input.Body.NewPassword); err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &ChangePasswordOutput{Status: http.StatusNoContent}, nil
}
