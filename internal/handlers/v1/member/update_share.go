package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/handlers/v1/handlerutil"
)

// UpdateShareBody is the request body for setting a member's share.
type UpdateShareBody struct {
	Share string `json:"share" required:"true" doc:"Percentage share between 0 and 100"`
}

// UpdateShareInput is the Huma input for setting a member's share.
type UpdateShareInput struct {
	BudgetID string `path:"budgetID" doc:"Budget UUID"`
	MemberID string `path:"memberID" doc:"Membership UUID"`
	Body     UpdateShareBody
}

// UpdateShareOutput is the Huma output for setting a member's share.
type UpdateShareOutput struct {
	Status int
}

type shareUpdater interface {
	UpdateShare(ctx context.Context, userID, budgetID, memberID uuid.UUID, share decimal.Decimal) error
}

// UpdateShareHandler handles PATCH /v1/budget/{budgetID}/member/{memberID}.
type UpdateShareHandler struct {
	Service shareUpdater
}

// NewUpdateShareHandler creates a new UpdateShareHandler.
func NewUpdateShareHandler(svc shareUpdater) *UpdateShareHandler {
	return &UpdateShareHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateShareHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-member-share",
		Method:        http.MethodPatch,
		Path:          "/v1/budget/{budgetID}/member/{memberID}",
		Summary:       "Update member share",
		Description:   "Sets a member's percentage share. Owner only. Shares need not sum to 100.",
		Tags:          []string{"Members"},
		Security:      handlerutil.BearerSecurity,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateShareHandler) handle(ctx context.Context, input *UpdateShareInput) (*UpdateShareOutput, error) {
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

	share, err := decimal.NewFromString(input.Body.Share)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid share", err)
	}

	if err = h.Service.UpdateShare(ctx, userID, budgetID, memberID, share); err != nil {
		return nil, handlerutil.ServiceError(err)
	}
	return &UpdateShareOutput{Status: http.StatusNoContent}, nil
}
