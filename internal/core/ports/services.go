package ports

import (
	"context"
	"time"

	"p2p-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT session token operations.
type TokenService interface {
	Generate(accountID uuid.UUID, username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID uuid.UUID
	Username  string
}

// Notifier is the human-readable status side channel of the command surface.
// Delivery is best-effort and carries no contractual meaning.
type Notifier interface {
	Notify(ctx context.Context, accountID uuid.UUID, message string)
}

// --- Service Ports (Business Logic) ---

// AccountService defines account and balance operations.
type AccountService interface {
	GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	SwitchRole(ctx context.Context, accountID uuid.UUID, target domain.Role) (*domain.Account, error)
	Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Account, error)
	Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Account, error)
}

// OfferService defines offer book operations.
type OfferService interface {
	ListOffers(ctx context.Context, params OfferListParams) ([]domain.Offer, int64, error)
	GetOffer(ctx context.Context, offerID uuid.UUID) (*domain.Offer, error)
	PublishOffer(ctx context.Context, req PublishOfferRequest) (*domain.Offer, error)
}

// PublishOfferRequest holds validated input for publishing an offer.
type PublishOfferRequest struct {
	SellerID  uuid.UUID
	Price     decimal.Decimal
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
	Currency  string
}

// DealService defines the deal lifecycle command and query surface.
type DealService interface {
	InitiateBuy(ctx context.Context, req InitiateBuyRequest) (*domain.Deal, error)
	ConfirmEscrow(ctx context.Context, accountID, dealID uuid.UUID) (*domain.Deal, error)
	ConfirmComplete(ctx context.Context, accountID, dealID uuid.UUID) (*domain.Deal, error)
	OpenDispute(ctx context.Context, accountID, dealID uuid.UUID) (*domain.Deal, error)
	CancelDeal(ctx context.Context, accountID, dealID uuid.UUID) (*domain.Deal, error)
	ListDeals(ctx context.Context, params DealListParams) ([]domain.Deal, int64, error)
}

// InitiateBuyRequest holds validated input for starting a buy against an offer.
type InitiateBuyRequest struct {
	BuyerID uuid.UUID
	OfferID uuid.UUID
	Amount  decimal.Decimal
}

// AuthService defines session registration and login.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for account registration.
type RegisterRequest struct {
	Username    string
	Password    string
	DisplayName string
}
