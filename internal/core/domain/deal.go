package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealStatus represents the lifecycle state of a deal.
type DealStatus string

const (
	DealStatusPending   DealStatus = "pending"
	DealStatusEscrow    DealStatus = "escrow"
	DealStatusCompleted DealStatus = "completed"
	DealStatusCancelled DealStatus = "cancelled"
)

// DealSide is the perspective of one party on a deal.
type DealSide string

const (
	DealSideBuy  DealSide = "buy"
	DealSideSell DealSide = "sell"
)

// Deal is a bilateral trade instance derived from an Offer.
// Amount and Price are fixed at creation; Amount*Price is the settlement value.
type Deal struct {
	ID         uuid.UUID       `json:"id"`
	OfferID    uuid.UUID       `json:"offer_id"`
	BuyerID    uuid.UUID       `json:"buyer_id"`
	BuyerName  string          `json:"buyer_name"`
	SellerID   uuid.UUID       `json:"seller_id"`
	SellerName string          `json:"seller_name"`
	Amount     decimal.Decimal `json:"amount"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency"`
	Status     DealStatus      `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"` // Last transition time
}

// SettlementValue returns Amount * Price.
func (d *Deal) SettlementValue() decimal.Decimal {
	return d.Amount.Mul(d.Price)
}

// IsTerminal reports whether the deal is in a final state.
func (d *Deal) IsTerminal() bool {
	return d.Status == DealStatusCompleted || d.Status == DealStatusCancelled
}

// IsActive reports whether the deal is still in flight.
func (d *Deal) IsActive() bool {
	return !d.IsTerminal()
}

// CanTransition reports whether the status change from the current state to
// target is one of the allowed lifecycle edges.
func (d *Deal) CanTransition(target DealStatus) bool {
	switch d.Status {
	case DealStatusPending:
		return target == DealStatusEscrow || target == DealStatusCancelled
	case DealStatusEscrow:
		return target == DealStatusCompleted || target == DealStatusCancelled
	default:
		return false
	}
}

// IsParty reports whether accountID is the buyer or the seller of the deal.
func (d *Deal) IsParty(accountID uuid.UUID) bool {
	return d.BuyerID == accountID || d.SellerID == accountID
}

// SideFor returns the deal side from the perspective of accountID.
func (d *Deal) SideFor(accountID uuid.UUID) DealSide {
	if d.BuyerID == accountID {
		return DealSideBuy
	}
	return DealSideSell
}

// CounterpartyFor returns the display name of the other party relative to accountID.
func (d *Deal) CounterpartyFor(accountID uuid.UUID) string {
	if d.BuyerID == accountID {
		return d.SellerName
	}
	return d.BuyerName
}
