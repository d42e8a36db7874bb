package ports

import (
	"context"

	"p2p-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for accounts.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic
// locking; the in-memory backend ignores the tx argument.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	// Update persists the mutable fields (role, balances, counters, UpdatedAt).
	Update(ctx context.Context, tx pgx.Tx, account *domain.Account) error
}

// OfferRepository defines persistence operations for the offer book.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
	// List returns offers ordered by ascending price, ties broken by
	// descending rating, then descending deals, then ascending id.
	List(ctx context.Context, params OfferListParams) ([]domain.Offer, int64, error)
}

// OfferListParams holds filter + pagination for listing offers.
type OfferListParams struct {
	Currency *string
	MaxPrice *decimal.Decimal
	Page     int
	PageSize int
}

// DealRepository defines persistence operations for deals.
type DealRepository interface {
	Create(ctx context.Context, tx pgx.Tx, deal *domain.Deal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Deal, error)
	Update(ctx context.Context, tx pgx.Tx, deal *domain.Deal) error
	List(ctx context.Context, params DealListParams) ([]domain.Deal, int64, error)
}

// DealListParams holds filter + pagination for listing an account's deals.
type DealListParams struct {
	AccountID  uuid.UUID
	Status     *domain.DealStatus
	Side       *domain.DealSide
	ActiveOnly bool
	Page       int
	PageSize   int
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
