package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
	"github.com/tempo-networks/budget-server/internal/service"
)

// ListMembersInput is the Huma input for listing members.
type ListMembersInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
}

// ListMembersOutput is the Huma output for listing members.
type ListMembersOutput struct {
	Body struct {
		Members []MemberResponse `json:"members"`
	}
}

type memberLister interface {
	ListMembers(ctx context.Context, userID, budgetID uuid.UUID) ([]service.Member, error)
}

// ListMembersHandler handles GET /v1/budget/{budgetID}/member.
type ListMembersHandler struct {
	Service memberLister
}

// NewListMembersHandler creates a new ListMembersHandler.
func NewListMembersHandler(svc memberLister) *ListMembersHandler {
	return &ListMembersHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListMembersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-members",
		Method:      http.MethodGet,
		Path:        "/v1/budget/{budgetID}/member",
		Summary:     "List members",
		Description: "Lists the members of a group budget.",
		Tags:        []string{"Members"},
		Security:    handlerutil.BearerSecurity,
	}, h.handle)
}

func (h *ListMembersHandler) handle(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	userID, err := handlerutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	budgetID, err := handlerutil.ParseID(input.BudgetID, "budgetID")
	if err != nil {
		return nil, err
	}

	members, err := h.Service.ListMembers(ctx, userID, budgetID)
	if err != nil {
		return nil, handlerutil.ServiceError(err)
	}

	output := &ListMembersOutput{}
	output.Body.Members = make([]MemberResponse, len(members))
	for i, m := range members {
		output.Body.Members[i] = memberResponse(m)
	}
	return output, nil
}
