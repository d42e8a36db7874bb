package service

import (
	"context"
	"testing"

	"p2p-exchange/internal/core/domain"
	"p2p-exchange/internal/core/ports"
	"p2p-exchange/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type offerTestDeps struct {
	svc         *OfferServiceImpl
	offerRepo   *mocks.MockOfferRepository
	accountRepo *mocks.MockAccountRepository
	notifier    *mocks.MockNotifier
	ctrl        *gomock.Controller
}

func setupOfferService(t *testing.T) *offerTestDeps {
	ctrl := gomock.NewController(t)
	d := &offerTestDeps{
		offerRepo:   mocks.NewMockOfferRepository(ctrl),
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewOfferService(d.offerRepo, d.accountRepo, d.notifier, zerolog.Nop())
	return d
}

func validPublishRequest(sellerID uuid.UUID) ports.PublishOfferRequest {
	return ports.PublishOfferRequest{
		SellerID:  sellerID,
		Price:     decimal.RequireFromString("95.50"),
		MinAmount: decimal.NewFromInt(100),
		MaxAmount: decimal.NewFromInt(5000),
		Currency:  "USDT",
	}
}

func TestOfferService_PublishOffer(t *testing.T) {
	d := setupOfferService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	d.accountRepo.EXPECT().GetByID(ctx, sellerID).Return(&domain.Account{
		ID:             sellerID,
		DisplayName:    "CryptoKing",
		CompletedDeals: 1250,
	}, nil)
	d.offerRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().Notify(ctx, sellerID, gomock.Any())

	offer, err := d.svc.PublishOffer(ctx, validPublishRequest(sellerID))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, offer.ID)
	assert.Equal(t, "CryptoKing", offer.SellerName)
	assert.Equal(t, int64(1250), offer.Deals)
	assert.True(t, offer.MinAmount.LessThanOrEqual(offer.MaxAmount))
	assert.True(t, offer.Price.IsPositive())
}

func TestOfferService_PublishOffer_InvalidTerms(t *testing.T) {
	d := setupOfferService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	cases := []struct {
		name   string
		mutate func(*ports.PublishOfferRequest)
	}{
		{"zero price", func(r *ports.PublishOfferRequest) { r.Price = decimal.Zero }},
		{"negative price", func(r *ports.PublishOfferRequest) { r.Price = decimal.NewFromInt(-1) }},
		{"zero min amount", func(r *ports.PublishOfferRequest) { r.MinAmount = decimal.Zero }},
		{"min above max", func(r *ports.PublishOfferRequest) {
			r.MinAmount = decimal.NewFromInt(500)
			r.MaxAmount = decimal.NewFromInt(100)
		}},
		{"empty currency", func(r *ports.PublishOfferRequest) { r.Currency = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validPublishRequest(sellerID)
			tc.mutate(&req)

			// No repo Create expected: the offer book stays untouched.
			_, err := d.svc.PublishOffer(ctx, req)
			assertAppError(t, err, "OFR_001")
		})
	}
}

func TestOfferService_PublishOffer_UnknownSeller(t *testing.T) {
	d := setupOfferService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	d.accountRepo.EXPECT().GetByID(ctx, sellerID).Return(nil, nil)

	_, err := d.svc.PublishOffer(ctx, validPublishRequest(sellerID))
	assertAppError(t, err, "NF_001")
}

func TestOfferService_GetOffer_NotFound(t *testing.T) {
	d := setupOfferService(t)
	ctx := context.Background()
	offerID := uuid.New()

	d.offerRepo.EXPECT().GetByID(ctx, offerID).Return(nil, nil)

	_, err := d.svc.GetOffer(ctx, offerID)
	assertAppError(t, err, "NF_001")
}

func TestOfferService_ListOffers(t *testing.T) {
	d := setupOfferService(t)
	ctx := context.Background()
	params := ports.OfferListParams{Page: 1, PageSize: 20}

	d.offerRepo.EXPECT().List(ctx, params).Return([]domain.Offer{
		{SellerName: "TraderPro", Price: decimal.RequireFromString("95.30")},
		{SellerName: "CryptoKing", Price: decimal.RequireFromString("95.50")},
	}, int64(2), nil)

	offers, total, err := d.svc.ListOffers(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, offers, 2)
}
