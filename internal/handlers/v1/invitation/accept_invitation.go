package invitation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
)

// AcceptInvitationInput is the Huma input for accepting an invitation.
type AcceptInvitationInput struct {
	InvitationID string `path:"invitationID" doc:"Invitation UUID"`
}

// AcceptInvitationOutput is the Huma output for accepting an invitation.
type AcceptInvitationOutput struct {
	Status int
}

type invitationAccepter interface {
	AcceptInvitation(ctx context.Context, userID, invitationID uuid.UUID) error
}

// AcceptInvitationHandler handles POST /v1/invitation/{invitationID}/accept.
type AcceptInvitationHandler struct {
	Service invitationAccepter
}

// NewAcceptInvitationHandler creates a new AcceptInvitationHandler.
func NewAcceptInvitationHandler(svc invitationAccepter) *AcceptInvitationHandler {
	return &AcceptInvitationHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *AcceptInvitationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "accept-invitation",
		Method:        http.MethodPost,
		Path:          "/v1/invitation/{invitationID}/accept",
		Summary:       "Accept invitation",
		Description:   "Joins the caller to the invitation's budget.",
		Tags:          []string{"Invitations"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *AcceptInvitationHandler) handle(ctx context.Context, input *AcceptInvitationInput) (*AcceptInvitationOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	invitationID, err := handlerutil.ParseID(input.InvitationID, "invitationID")
	if err != nil {
		return nil, err
	}

	if err = h.Service.AcceptInvitation(ctx, userID, invitationID); err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &AcceptInvitationOutput{Status: http.StatusNoContent}, nil
}
