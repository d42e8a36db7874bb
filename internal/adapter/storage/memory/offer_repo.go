package memory

import (
	"context"
	"sort"
	"sync"

	"p2p-exchange/internal/core/domain"
	"p2p-exchange/internal/core/ports"

	"github.com/google/uuid"
)

// OfferRepository is an in-memory implementation of ports.OfferRepository.
type OfferRepository struct {
	mu     sync.RWMutex
	offers map[uuid.UUID]domain.Offer
}

// NewOfferRepository creates an empty in-memory offer book.
func NewOfferRepository() *OfferRepository {
	return &OfferRepository{offers: make(map[uuid.UUID]domain.Offer)}
}

func (r *OfferRepository) Create(ctx context.Context, offer *domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers[offer.ID] = *offer
	return nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	offer, ok := r.offers[id]
	if !ok {
		return nil, nil
	}
	return &offer, nil
}

// List returns a page of the offer book: cheapest first, better rated and
// more experienced sellers ahead on equal price.
func (r *OfferRepository) List(ctx context.Context, params ports.OfferListParams) ([]domain.Offer, int64, error) {
	r.mu.RLock()
	matched := make([]domain.Offer, 0, len(r.offers))
	for _, offer := range r.offers {
		if params.Currency != nil && offer.Currency != *params.Currency {
			continue
		}
		if params.MaxPrice != nil && offer.Price.GreaterThan(*params.MaxPrice) {
			continue
		}
		matched = append(matched, offer)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.Price.Equal(b.Price) {
			return a.Price.LessThan(b.Price)
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.Deals != b.Deals {
			return a.Deals > b.Deals
		}
		return a.ID.String() < b.ID.String()
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return []domain.Offer{}, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}
