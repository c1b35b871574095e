package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// MemberBalance is one member's settlement line. Due is the member's share
// of the budget's total allocation, Paid is the income they contributed,
// and Balance is Paid minus Due: positive means overpaid, negative owes.
type MemberBalance struct {
	UserID  uuid.UUID
	Name    string
	Email   string
	Share   decimal.Decimal
	Due     decimal.Decimal
	Paid    decimal.Decimal
	Balance decimal.Decimal
}

// BudgetBalances is the settlement summary of a group budget.
type BudgetBalances struct {
	TotalAllocation decimal.Decimal
	Members         []MemberBalance
}
