// Package handlerutil carries the pieces every endpoint package needs:
// mapping service errors to HTTP statuses and reading the authenticated
// user from the request context.
package handlerutil

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/auth"
	"github.com/tempo-networks/budget-server/internal/service"
)

// BearerSecurity marks an operation as requiring a bearer token. The auth
// middleware skips operations without it.
var BearerSecurity = []map[string][]string{{"bearer": {}}}

// ServiceError translates service sentinel errors into huma errors.
// Unrecognized errors pass through and surface as 500s.
func ServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return huma.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return huma.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrAlreadyInvited),
		errors.Is(err, service.ErrInvitationResolved):
		return huma.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotGroupBudget),
		errors.Is(err, service.ErrOwnerRemoval),
		errors.Is(err, service.ErrInvalidShare),
		errors.Is(err, service.ErrInvalidTemplate):
		return huma.NewError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}

// UserID returns the authenticated user's ID from the request context.
func UserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}
	return userID, nil
}

// ParseID parses a path parameter UUID.
func ParseID(value, name string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return id, nil
}
