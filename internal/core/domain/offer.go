package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Offer is a standing, seller-published quote. Immutable after publication.
type Offer struct {
	ID         uuid.UUID       `json:"id"`
	SellerID   uuid.UUID       `json:"seller_id"`
	SellerName string          `json:"seller_name"`
	Price      decimal.Decimal `json:"price"`
	MinAmount  decimal.Decimal `json:"min_amount"`
	MaxAmount  decimal.Decimal `json:"max_amount"`
	Currency   string          `json:"currency"`
	Rating     float64         `json:"rating"`
	Deals      int64           `json:"deals"` // Seller's historical completed-deal count
	CreatedAt  time.Time       `json:"created_at"`
}

// InRange reports whether amount satisfies the offer's [MinAmount, MaxAmount] bound.
func (o *Offer) InRange(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(o.MinAmount) && amount.LessThanOrEqual(o.MaxAmount)
}
