package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"p2p-exchange/internal/core/domain"
	"p2p-exchange/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DealRepository is an in-memory implementation of ports.DealRepository.
type DealRepository struct {
	mu    sync.RWMutex
	deals map[uuid.UUID]domain.Deal
}

// NewDealRepository creates an empty in-memory deal ledger.
func NewDealRepository() *DealRepository {
	return &DealRepository{deals: make(map[uuid.UUID]domain.Deal)}
}

func (r *DealRepository) Create(ctx context.Context, tx pgx.Tx, deal *domain.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deals[deal.ID] = *deal
	return nil
}

func (r *DealRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	deal, ok := r.deals[id]
	if !ok {
		return nil, nil
	}
	return &deal, nil
}

func (r *DealRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Deal, error) {
	return r.GetByID(ctx, id)
}

func (r *DealRepository) Update(ctx context.Context, tx pgx.Tx, deal *domain.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.deals[deal.ID]; !ok {
		return fmt.Errorf("deal %s not found", deal.ID)
	}
	r.deals[deal.ID] = *deal
	return nil
}

// List returns a page of the account's deals, newest first.
func (r *DealRepository) List(ctx context.Context, params ports.DealListParams) ([]domain.Deal, int64, error) {
	r.mu.RLock()
	matched := make([]domain.Deal, 0, len(r.deals))
	for _, deal := range r.deals {
		if !deal.IsParty(params.AccountID) {
			continue
		}
		if params.Status != nil && deal.Status != *params.Status {
			continue
		}
		if params.Side != nil && deal.SideFor(params.AccountID) != *params.Side {
			continue
		}
		if params.ActiveOnly && !deal.IsActive() {
			continue
		}
		matched = append(matched, deal)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return []domain.Deal{}, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}
