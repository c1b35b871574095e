package authn

import (
	"github.com/tempo-networks/budget-server/internal/service"
)

// UserResponse is a user as returned to clients.
type UserResponse struct {
	ID    string `json:"id" doc:"User UUID"`
	Name  string `json:"name" doc:"Display name"`
	Email string `json:"email" doc:"Email address"`
}

// SessionResponse carries a user together with a signed bearer token.
type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token" doc:"Bearer token"`
}

func userResponse(user service.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

func sessionResponse(user service.User, token string) SessionResponse {
	return SessionResponse{
		User:  userResponse(user),
		Token: token,
	}
}
