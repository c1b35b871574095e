package invitation

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
)

// InvitationResponse is a pending invitation as returned to clients.
type InvitationResponse struct {
	ID          string    `json:"id" doc:"Invitation UUID"`
	BudgetID    string    `json:"budgetID" doc:"Budget UUID"`
	BudgetName  string    `json:"budgetName" doc:"Budget name"`
	InviterName string    `json:"inviterName" doc:"Who sent the invitation"`
	Role        string    `json:"role" enum:"owner,member" doc:"Role granted on accept"`
	CreatedAt   time.Time `json:"createdAt" doc:"When the invitation was sent"`
}

// ListInvitationsInput is the Huma input for listing the caller's invitations.
type ListInvitationsInput struct{}

// ListInvitationsOutput is the Huma output for listing the caller's invitations.
type ListInvitationsOutput struct {
	Body struct {
		Invitations []InvitationResponse `json:"invitations"`
	}
}

type invitationLister interface {
	ListInvitations(ctx context.Context, userID uuid.UUID) ([]service.Invitation, error)
}

// ListInvitationsHandler handles GET /v1/invitation.
type ListInvitationsHandler struct {
	Service invitationLister
}

// NewListInvitationsHandler creates a new ListInvitationsHandler.
func NewListInvitationsHandler(svc invitationLister) *ListInvitationsHandler {
	return &ListInvitationsHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListInvitationsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-invitations",
		Method:      http.MethodGet,
		Path:        "/v1/invitation",
		Summary:     "List invitations",
		Description: "Lists the caller's pending budget invitations.",
		Tags:        []string{"Invitations"},
		Security:    handlerutil.BearerSecurity,
	}, h.handle)
}

func (h *ListInvitationsHandler) handle(ctx context.Context, _ *ListInvitationsInput) (*ListInvitationsOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	invitations, err := h.Service.ListInvitations(ctx, userID)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}

	output := &ListInvitationsOutput{}
	output.Body.Invitations = make([]InvitationResponse, len(invitations))
	for i, inv := range invitations {
		output.Body.Invitations[i] = InvitationResponse{
			ID:          inv.ID.String(),
			BudgetID:    inv.BudgetID.String(),
			BudgetName:  inv.BudgetName,
			InviterName: inv.InviterName,
			Role:        string(inv.Role),
			CreatedAt:   inv.CreatedAt,
		}
	}
	return output, nil
}
