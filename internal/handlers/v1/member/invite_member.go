package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// InviteMemberBody is the request body for inviting a member.
type InviteMemberBody struct {
	Email string `json:"email" required:"true" format:"email" doc:"Invitee's email; an account is not required yet"`
	Role  string `json:"role,omitempty" enum:"owner,member" doc:"Role to grant, defaults to member"`
}

// InviteMemberInput is the Huma input for inviting a member.
type InviteMemberInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
	Body     InviteMemberBody
}

// InviteMemberOutput is the Huma output for inviting a member.
type InviteMemberOutput struct {
	Body struct {
		InvitationID string `json:"invitationID" doc:"Invitation UUID"`
	}
}

type memberInviter interface {
	InviteMember(ctx context.Context, userID, budgetID uuid.UUID, email string, role sqlconfig.MemberRole) (uuid.UUID, error)
}

// InviteMemberHandler handles POST /v1/budget/{budgetID}/member.
type InviteMemberHandler struct {
	Service memberInviter
}

// NewInviteMemberHandler creates a new InviteMemberHandler.
func NewInviteMemberHandler(svc memberInviter) *InviteMemberHandler {
	return &InviteMemberHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *InviteMemberHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "invite-member",
		Method:        http.MethodPost,
		Path:          "/v1/budget/{budgetID}/member",
		Summary:       "Invite member",
		Description:   "Creates a pending invitation to a group budget. Owner only.",
		Tags:          []string{"Members"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *InviteMemberHandler) handle(ctx context.Context, input *InviteMemberInput) (*InviteMemberOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}

	invitationID, err := h.Service.InviteMember(ctx, userID, budgetID, input.Body.Email, sqlconfig.MemberRole(input.Body.Role))
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}

	output := &InviteMemberOutput{}
	output.Body.InvitationID = invitationID.String()
	return output, nil
}
