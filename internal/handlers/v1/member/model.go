package member

import (
	"time"

	"github.com/tempo-networks/budget-server/internal/service"
)

// MemberResponse is a budget member as returned to clients.
type MemberResponse struct {
	ID        string    `json:"id" doc:"Membership UUID"`
	UserID    string    `json:"userID" doc:"User UUID"`
	Name      string    `json:"name" doc:"Member's display name"`
	Email     string    `json:"email" doc:"Member's email"`
	Role      string    `json:"role" enum:"owner,member" doc:"owner or member"`
	Share     string    `json:"share" doc:"Percentage share of the budget's allocation"`
	CreatedAt time.Time `json:"createdAt" doc:"When the member joined"`
}

func memberResponse(m service.Member) MemberResponse {
	return MemberResponse{
		ID:        m.ID.String(),
		UserID:    m.UserID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Role:      string(m.Role),
		Share:     m.Share.String(),
		CreatedAt: m.CreatedAt,
	}
}

// BalanceResponse is one member's settlement line.
type BalanceResponse struct {
	UserID  string `json:"userID" doc:"User UUID"`
	Name    string `json:"name" doc:"Member's display name"`
	Email   string `json:"email" doc:"Member's email"`
	Share   string `json:"share" doc:"Percentage share"`
	Due     string `json:"due" doc:"Share of the total allocation"`
	Paid    string `json:"paid" doc:"Income contributed"`
	Balance string `json:"balance" doc:"Paid minus due; negative owes"`
}

func balanceResponse(b service.MemberBalance) BalanceResponse {
	return BalanceResponse{
		UserID:  b.UserID.String(),
		Name:    b.Name,
		Email:   b.Email,
		Share:   b.Share.String(),
		Due:     b.Due.String(),
		Paid:    b.Paid.String(),
		Balance: b.Balance.String(),
	}
}
