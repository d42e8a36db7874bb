package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role represents the trading mode of an account.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// Account represents a trader's profile and funds.
// Balance is the spendable amount; EscrowHeld is locked by in-flight deals.
type Account struct {
	ID             uuid.UUID       `json:"id"`
	Username       string          `json:"username"`
	DisplayName    string          `json:"display_name"`
	PasswordHash   string          `json:"-"` // Never expose
	Role           Role            `json:"role"`
	Balance        decimal.Decimal `json:"balance"`
	EscrowHeld     decimal.Decimal `json:"escrow_held"`
	TotalBought    decimal.Decimal `json:"total_bought"`
	TotalSold      decimal.Decimal `json:"total_sold"`
	CompletedDeals int64           `json:"completed_deals"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CanSpend reports whether the spendable balance covers amount.
func (a *Account) CanSpend(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
