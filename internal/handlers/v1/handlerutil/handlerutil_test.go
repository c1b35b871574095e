package handlerutil

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempo-networks/budget-server/internal/auth"
	"github.com/tempo-networks/budget-server/internal/service"
)

func TestUserID_ReadsAuthenticatedUser(t *testing.T) {
	expected := uuid.Must(uuid.NewV4())
	ctx := auth.WithUserID(context.Background(), expected)

	userID, err := UserID(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, userID)
}

func TestUserID_MissingUser(t *testing.T) {
	_, err := UserID(context.Background())

	require.Error(t, err)
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.GetStatus())
}

func TestServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"email taken", service.ErrEmailTaken, http.StatusConflict},
		{"already member", service.ErrAlreadyMember, http.StatusConflict},
		{"invitation resolved", service.ErrInvitationResolved, http.StatusConflict},
		{"not group budget", service.ErrNotGroupBudget, http.StatusBadRequest},
		{"invalid template", service.ErrInvalidTemplate, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ServiceError(tt.err)

			var statusErr huma.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.GetStatus())
		})
	}
}

func TestServiceError_UnknownErrorPassesThrough(t *testing.T) {
	cause := errors.New("connection reset")

	assert.Same(t, cause, ServiceError(cause))
}

func TestParseID(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	parsed, err := ParseID(id.String(), "budgetID")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseID("not-a-uuid", "budgetID")
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.GetStatus())
}
