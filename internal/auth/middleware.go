package auth

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

type userIDContextKey struct{}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(uuid.UUID)
	return userID, ok
}

// NewMiddleware enforces bearer auth on operations that declare a security
// requirement. Operations without one (register, login, status) pass through.
func NewMiddleware(api huma.API, secret string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			_ = huma.WriteErr(api, ctx, 401, "missing bearer token")
			return
		}

		userID, err := VerifyToken(secret, tokenString)
		if err != nil {
			_ = huma.WriteErr(api, ctx, 401, "invalid bearer token")
			return
		}

		ctx = huma.WithValue(ctx, userIDContextKey{}, userID)
		next(ctx)
	}
}
