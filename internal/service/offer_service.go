package service

import (
	"context"
	"fmt"
	"time"

	"p2p-exchange/internal/core/domain"
	"p2p-exchange/internal/core/ports"
	"p2p-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OfferServiceImpl implements ports.OfferService.
type OfferServiceImpl struct {
	offerRepo   ports.OfferRepository
	accountRepo ports.AccountRepository
	notifier    ports.Notifier
	log         zerolog.Logger
}

// NewOfferService creates a new OfferServiceImpl.
func NewOfferService(
	offerRepo ports.OfferRepository,
	accountRepo ports.AccountRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *OfferServiceImpl {
	return &OfferServiceImpl{
		offerRepo:   offerRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
		log:         log,
	}
}

// ListOffers returns the offer book, cheapest first.
func (s *OfferServiceImpl) ListOffers(ctx context.Context, params ports.OfferListParams) ([]domain.Offer, int64, error) {
	offers, total, err := s.offerRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list offers: %w", err))
	}
	return offers, total, nil
}

// GetOffer returns a single offer.
func (s *OfferServiceImpl) GetOffer(ctx context.Context, offerID uuid.UUID) (*domain.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get offer: %w", err))
	}
	if offer == nil {
		return nil, apperror.ErrNotFound("offer")
	}
	return offer, nil
}

// PublishOffer validates the terms and appends a new offer to the book.
// Offers are immutable after publication.
func (s *OfferServiceImpl) PublishOffer(ctx context.Context, req ports.PublishOfferRequest) (*domain.Offer, error) {
	if !req.Price.IsPositive() {
		return nil, apperror.ErrInvalidOfferTerms("price must be positive")
	}
	if !req.MinAmount.IsPositive() {
		return nil, apperror.ErrInvalidOfferTerms("minimum amount must be positive")
	}
	if req.MinAmount.GreaterThan(req.MaxAmount) {
		return nil, apperror.ErrInvalidOfferTerms("minimum amount exceeds maximum")
	}
	if req.Currency == "" {
		return nil, apperror.ErrInvalidOfferTerms("currency is required")
	}

	seller, err := s.accountRepo.GetByID(ctx, req.SellerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get seller: %w", err))
	}
	if seller == nil {
		return nil, apperror.ErrNotFound("account")
	}

	offer := &domain.Offer{
		ID:         uuid.New(),
		SellerID:   seller.ID,
		SellerName: seller.DisplayName,
		Price:      req.Price,
		MinAmount:  req.MinAmount,
		MaxAmount:  req.MaxAmount,
		Currency:   req.Currency,
		Rating:     0,
		Deals:      seller.CompletedDeals,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create offer: %w", err))
	}

	s.notifier.Notify(ctx, seller.ID, "Listing published")

	s.log.Info().
		Str("offer_id", offer.ID.String()).
		Str("seller_id", seller.ID.String()).
		Str("price", offer.Price.String()).
		Str("currency", offer.Currency).
		Msg("offer published")

	return offer, nil
}
