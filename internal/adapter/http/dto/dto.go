package dto

import (
	"time"

	"p2p-exchange/internal/core/domain"

	"github.com/google/uuid"
)

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	DisplayName string `json:"display_name" binding:"omitempty,max=100"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// SwitchRoleRequest is the request body for switching trading mode.
type SwitchRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=buyer seller"`
}

// AmountRequest carries a single decimal amount, string-encoded to keep
// exact precision on the wire.
type AmountRequest struct {
	Amount string `json:"amount" binding:"required,decimal_amount"`
}

// PublishOfferRequest is the request body for publishing a sell offer.
type PublishOfferRequest struct {
	Price     string `json:"price" binding:"required,decimal_amount"`
	MinAmount string `json:"min_amount" binding:"required,decimal_amount"`
	MaxAmount string `json:"max_amount" binding:"required,decimal_amount"`
	Currency  string `json:"currency" binding:"required,min=3,max=8,safe_id"`
}

// BuyRequest is the request body for initiating a purchase.
type BuyRequest struct {
	Amount string `json:"amount" binding:"required,decimal_amount"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Role           string `json:"role"`
	Balance        string `json:"balance"`
	EscrowHeld     string `json:"escrow_held"`
	TotalBought    string `json:"total_bought"`
	TotalSold      string `json:"total_sold"`
	CompletedDeals int64  `json:"completed_deals"`
	CreatedAt      string `json:"created_at"`
}

// OfferResponse is the public view of an offer.
type OfferResponse struct {
	ID         string  `json:"id"`
	SellerID   string  `json:"seller_id"`
	SellerName string  `json:"seller_name"`
	Price      string  `json:"price"`
	MinAmount  string  `json:"min_amount"`
	MaxAmount  string  `json:"max_amount"`
	Currency   string  `json:"currency"`
	Rating     float64 `json:"rating"`
	Deals      int64   `json:"deals"`
	CreatedAt  string  `json:"created_at"`
}

// OfferListResponse wraps a paginated offer list.
type OfferListResponse struct {
	Items      []OfferResponse `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// DealResponse is one party's view of a deal. Type and Counterparty are
// derived from the viewer's side.
type DealResponse struct {
	ID           string `json:"id"`
	OfferID      string `json:"offer_id"`
	Type         string `json:"type"`
	Counterparty string `json:"counterparty"`
	Amount       string `json:"amount"`
	Price        string `json:"price"`
	Value        string `json:"value"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// DealListResponse wraps a paginated deal list.
type DealListResponse struct {
	Items      []DealResponse `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// FromAccount maps a domain account to its API view.
func FromAccount(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID.String(),
		Username:       a.Username,
		DisplayName:    a.DisplayName,
		Role:           string(a.Role),
		Balance:        a.Balance.String(),
		EscrowHeld:     a.EscrowHeld.String(),
		TotalBought:    a.TotalBought.String(),
		TotalSold:      a.TotalSold.String(),
		CompletedDeals: a.CompletedDeals,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

// FromOffer maps a domain offer to its API view.
func FromOffer(o *domain.Offer) OfferResponse {
	return OfferResponse{
		ID:         o.ID.String(),
		SellerID:   o.SellerID.String(),
		SellerName: o.SellerName,
		Price:      o.Price.String(),
		MinAmount:  o.MinAmount.String(),
		MaxAmount:  o.MaxAmount.String(),
		Currency:   o.Currency,
		Rating:     o.Rating,
		Deals:      o.Deals,
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
}

// FromDeal maps a domain deal to the viewer's perspective.
func FromDeal(d *domain.Deal, viewerID uuid.UUID) DealResponse {
	return DealResponse{
		ID:           d.ID.String(),
		OfferID:      d.OfferID.String(),
		Type:         string(d.SideFor(viewerID)),
		Counterparty: d.CounterpartyFor(viewerID),
		Amount:       d.Amount.String(),
		Price:        d.Price.String(),
		Value:        d.SettlementValue().String(),
		Currency:     d.Currency,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    d.UpdatedAt.Format(time.RFC3339),
	}
}

// TotalPages computes the page count for a paginated response.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		pages++
	}
	return int(pages)
}
