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

const dealColumns = `id, offer_id, buyer_id, buyer_name, seller_id, seller_name,
		amount, price, currency, status, created_at, updated_at`

// DealRepo implements ports.DealRepository.
type DealRepo struct {
	pool Pool
}

// NewDealRepo creates a new DealRepo.
func NewDealRepo(pool Pool) *DealRepo {
	return &DealRepo{pool: pool}
}

// Create inserts a new deal within a database transaction.
func (r *DealRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.Deal) error {
	query := `INSERT INTO deals (` + dealColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		d.ID, d.OfferID, d.BuyerID, d.BuyerName, d.SellerID, d.SellerName,
		d.Amount, d.Price, d.Currency, d.Status, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deal: %w", err)
	}
	return nil
}

// GetByID fetches a deal by its UUID (without locking).
func (r *DealRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`
	return scanDeal(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a deal by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *DealRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1 FOR UPDATE`
	return scanDeal(tx.QueryRow(ctx, query, id))
}

// Update persists a deal's status within a transaction.
func (r *DealRepo) Update(ctx context.Context, tx pgx.Tx, d *domain.Deal) error {
	query := `UPDATE deals SET status = $1, updated_at = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, d.Status, d.UpdatedAt, d.ID)
	if err != nil {
		return fmt.Errorf("update deal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deal not found: %s", d.ID)
	}
	return nil
}

// List fetches the account's deals with filtering and pagination, newest
// first.
func (r *DealRepo) List(ctx context.Context, params ports.DealListParams) ([]domain.Deal, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	switch {
	case params.Side != nil && *params.Side == domain.DealSideBuy:
		conditions = append(conditions, fmt.Sprintf("buyer_id = $%d", argIdx))
	case params.Side != nil && *params.Side == domain.DealSideSell:
		conditions = append(conditions, fmt.Sprintf("seller_id = $%d", argIdx))
	default:
		conditions = append(conditions, fmt.Sprintf("(buyer_id = $%d OR seller_id = $%d)", argIdx, argIdx))
	}
	args = append(args, params.AccountID)
	argIdx++

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.ActiveOnly {
		conditions = append(conditions, "status IN ('pending', 'escrow')")
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM deals %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count deals: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT `+dealColumns+` FROM deals %s
		ORDER BY created_at DESC, id ASC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	var deals []domain.Deal
	for rows.Next() {
		d := domain.Deal{}
		err := rows.Scan(
			&d.ID, &d.OfferID, &d.BuyerID, &d.BuyerName, &d.SellerID, &d.SellerName,
			&d.Amount, &d.Price, &d.Currency, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan deal row: %w", err)
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate deal rows: %w", err)
	}

	return deals, total, nil
}

func scanDeal(row pgx.Row) (*domain.Deal, error) {
	d := &domain.Deal{}
	err := row.Scan(
		&d.ID, &d.OfferID, &d.BuyerID, &d.BuyerName, &d.SellerID, &d.SellerName,
		&d.Amount, &d.Price, &d.Currency, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan deal: %w", err)
	}
	return d, nil
}
