package invitation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
)

// RejectInvitationInput is the Huma input for rejecting an invitation.
type RejectInvitationInput struct {
	InvitationID string `path:"invitationID" doc:"Invitation UUID"`
}

// RejectInvitationOutput is the Huma output for rejecting an invitation.
type RejectInvitationOutput struct {
	Status int
}

type invitationRejecter interface {
	RejectInvitation(ctx context.Context, userID, invitationID uuid.UUID) error
}

// RejectInvitationHandler handles POST /v1/invitation/{invitationID}/reject.
type RejectInvitationHandler struct {
	Service invitationRejecter
}

// NewRejectInvitationHandler creates a new RejectInvitationHandler.
func NewRejectInvitationHandler(svc invitationRejecter) *RejectInvitationHandler {
	return &RejectInvitationHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *RejectInvitationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "reject-invitation",
		Method:        http.MethodPost,
		Path:          "/v1/invitation/{invitationID}/reject",
		Summary:       "Reject invitation",
		Description:   "Marks the invitation rejected without joining the budget.",
		Tags:          []string{"Invitations"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *RejectInvitationHandler) handle(ctx context.Context, input *RejectInvitationInput) (*RejectInvitationOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	invitationID, err := handlerutil.ParseID(input.InvitationID, "invitationID")
	if err != nil {
		return nil, err
	}

	if err = h.Service.RejectInvitation(ctx, userID, invitationID); err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &RejectInvitationOutput{Status: http.StatusNoContent}, nil
}
