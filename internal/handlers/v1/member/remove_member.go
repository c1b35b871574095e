package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
)

// RemoveMemberInput is the Huma input for removing a member.
type RemoveMemberInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
	MemberID string `path:"memberID" doc:"Membership UUID"`
}

// RemoveMemberOutput is the Huma output for removing a member.
type RemoveMemberOutput struct {
	Status int
}

type memberRemover interface {
	RemoveMember(ctx context.Context, userID, budgetID, memberID uuid.UUID) error
}

// RemoveMemberHandler handles DELETE /v1/budget/{budgetID}/member/{memberID}.
type RemoveMemberHandler struct {
	Service memberRemover
}

// NewRemoveMemberHandler creates a new RemoveMemberHandler.
func NewRemoveMemberHandler(svc memberRemover) *RemoveMemberHandler {
	return &RemoveMemberHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *RemoveMemberHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "remove-member",
		Method:        http.MethodDelete,
		Path:          "/v1/budget/{budgetID}/member/{memberID}",
		Summary:       "Remove member",
		Description:   "Removes a member from a group budget. Owner only; owners cannot be removed.",
		Tags:          []string{"Members"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *RemoveMemberHandler) handle(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}
	memberID, err := handlerutil.ParseID(input.MemberID, "memberID")
	if err != nil {
		return nil, err
	}

	if err = h.Service.RemoveMember(ctx, userID, budgetID, memberID); err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &RemoveMemberOutput{Status: http.StatusNoContent}, nil
}
