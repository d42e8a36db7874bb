package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"p2p-exchange/internal/core/domain"
	"p2p-exchange/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const offerColumns = `id, seller_id, seller_name, price, min_amount, max_amount, currency, rating, deals, created_at`

// OfferRepo implements ports.OfferRepository.
type OfferRepo struct {
	pool Pool
}

// NewOfferRepo creates a new OfferRepo.
func NewOfferRepo(pool Pool) *OfferRepo {
	return &OfferRepo{pool: pool}
}

// Create inserts a new offer into the book.
func (r *OfferRepo) Create(ctx context.Context, o *domain.Offer) error {
	query := `INSERT INTO offers (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		o.ID, o.SellerID, o.SellerName, o.Price, o.MinAmount, o.MaxAmount,
		o.Currency, o.Rating, o.Deals, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// GetByID fetches an offer by its UUID.
func (r *OfferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	o := &domain.Offer{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.SellerID, &o.SellerName, &o.Price, &o.MinAmount, &o.MaxAmount,
		&o.Currency, &o.Rating, &o.Deals, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer by id: %w", err)
	}
	return o, nil
}

// List fetches offers with filtering and pagination: cheapest first, better
// rated and more experienced sellers ahead on equal price.
func (r *OfferRepo) List(ctx context.Context, params ports.OfferListParams) ([]domain.Offer, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Currency != nil {
		conditions = append(conditions, fmt.Sprintf("currency = $%d", argIdx))
		args = append(args, *params.Currency)
		argIdx++
	}
	if params.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", argIdx))
		args = append(args, *params.MaxPrice)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM offers %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count offers: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT `+offerColumns+` FROM offers %s
		ORDER BY price ASC, rating DESC, deals DESC, id ASC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		o := domain.Offer{}
		err := rows.Scan(
			&o.ID, &o.SellerID, &o.SellerName, &o.Price, &o.MinAmount, &o.MaxAmount,
			&o.Currency, &o.Rating, &o.Deals, &o.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan offer row: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate offer rows: %w", err)
	}

	return offers, total, nil
}
