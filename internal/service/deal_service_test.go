package service

import (
	"context"
	"testing"
	"time"

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

type dealTestDeps struct {
	svc         *DealServiceImpl
	dealRepo    *mocks.MockDealRepository
	offerRepo   *mocks.MockOfferRepository
	accountRepo *mocks.MockAccountRepository
	transactor  *mocks.MockDBTransactor
	notifier    *mocks.MockNotifier
	ctrl        *gomock.Controller
}

func setupDealService(t *testing.T) *dealTestDeps {
	ctrl := gomock.NewController(t)
	d := &dealTestDeps{
		dealRepo:    mocks.NewMockDealRepository(ctrl),
		offerRepo:   mocks.NewMockOfferRepository(ctrl),
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewDealService(d.dealRepo, d.offerRepo, d.accountRepo, d.transactor, d.notifier, NewKeyedLock(), zerolog.Nop())
	return d
}

func (d *dealTestDeps) expectTx() {
	d.transactor.EXPECT().Begin(gomock.Any()).Return(&mockTx{}, nil)
}

func seedOffer(sellerID uuid.UUID) *domain.Offer {
	return &domain.Offer{
		ID:         uuid.New(),
		SellerID:   sellerID,
		SellerName: "CryptoKing",
		Price:      decimal.RequireFromString("95.50"),
		MinAmount:  decimal.NewFromInt(100),
		MaxAmount:  decimal.NewFromInt(5000),
		Currency:   "USDT",
		Rating:     4.9,
		Deals:      1250,
		CreatedAt:  time.Now().UTC(),
	}
}

func seedDeal(buyerID, sellerID uuid.UUID, status domain.DealStatus) *domain.Deal {
	now := time.Now().UTC()
	return &domain.Deal{
		ID:         uuid.New(),
		OfferID:    uuid.New(),
		BuyerID:    buyerID,
		BuyerName:  "trader_joe",
		SellerID:   sellerID,
		SellerName: "CryptoKing",
		Amount:     decimal.NewFromInt(500),
		Price:      decimal.RequireFromString("95.50"),
		Currency:   "USDT",
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestDealService_InitiateBuy(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()
	offer := seedOffer(sellerID)

	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)
	d.accountRepo.EXPECT().GetByID(ctx, buyerID).Return(&domain.Account{
		ID:          buyerID,
		DisplayName: "trader_joe",
		Balance:     decimal.NewFromInt(50000),
	}, nil)
	d.expectTx()
	d.dealRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
	d.notifier.EXPECT().Notify(ctx, buyerID, gomock.Any())
	d.notifier.EXPECT().Notify(ctx, sellerID, gomock.Any())

	deal, err := d.svc.InitiateBuy(ctx, ports.InitiateBuyRequest{
		BuyerID: buyerID,
		OfferID: offer.ID,
		Amount:  decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DealStatusPending, deal.Status)
	assert.Equal(t, "CryptoKing", deal.SellerName)
	assert.True(t, decimal.RequireFromString("47750.00").Equal(deal.SettlementValue()))
}

func TestDealService_InitiateBuy_AmountOutOfRange(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	offer := seedOffer(uuid.New())

	for _, amount := range []decimal.Decimal{decimal.NewFromInt(50), decimal.NewFromInt(5001)} {
		d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)

		_, err := d.svc.InitiateBuy(ctx, ports.InitiateBuyRequest{
			BuyerID: uuid.New(),
			OfferID: offer.ID,
			Amount:  amount,
		})
		assertAppError(t, err, "OFR_002")
	}
}

func TestDealService_InitiateBuy_OfferNotFound(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	offerID := uuid.New()

	d.offerRepo.EXPECT().GetByID(ctx, offerID).Return(nil, nil)

	_, err := d.svc.InitiateBuy(ctx, ports.InitiateBuyRequest{
		BuyerID: uuid.New(),
		OfferID: offerID,
		Amount:  decimal.NewFromInt(500),
	})
	assertAppError(t, err, "NF_001")
}

func TestDealService_InitiateBuy_OwnOffer(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	offer := seedOffer(sellerID)

	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)
	d.accountRepo.EXPECT().GetByID(ctx, sellerID).Return(&domain.Account{
		ID:      sellerID,
		Balance: decimal.NewFromInt(100000),
	}, nil)

	_, err := d.svc.InitiateBuy(ctx, ports.InitiateBuyRequest{
		BuyerID: sellerID,
		OfferID: offer.ID,
		Amount:  decimal.NewFromInt(500),
	})
	assertAppError(t, err, "VAL_001")
}

func TestDealService_InitiateBuy_InsufficientFunds(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	offer := seedOffer(uuid.New())

	// 500 * 95.50 = 47750, buyer only holds 1250.50.
	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)
	d.accountRepo.EXPECT().GetByID(ctx, buyerID).Return(&domain.Account{
		ID:      buyerID,
		Balance: decimal.RequireFromString("1250.50"),
	}, nil)

	_, err := d.svc.InitiateBuy(ctx, ports.InitiateBuyRequest{
		BuyerID: buyerID,
		OfferID: offer.ID,
		Amount:  decimal.NewFromInt(500),
	})
	assertAppError(t, err, "ACC_001")
}

func TestDealService_ConfirmEscrow(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()
	deal := seedDeal(buyerID, sellerID, domain.DealStatusPending)
	buyer := &domain.Account{
		ID:      buyerID,
		Balance: decimal.NewFromInt(50000),
	}

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.expectTx()
	d.dealRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), deal.ID).Return(deal, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), buyerID).Return(buyer, nil)
	d.accountRepo.EXPECT().Update(ctx, gomock.Any(), buyer).Return(nil)
	d.dealRepo.EXPECT().Update(ctx, gomock.Any(), deal).Return(nil)
	d.notifier.EXPECT().Notify(ctx, buyerID, gomock.Any())
	d.notifier.EXPECT().Notify(ctx, sellerID, gomock.Any())

	got, err := d.svc.ConfirmEscrow(ctx, buyerID, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealStatusEscrow, got.Status)
	assert.True(t, decimal.RequireFromString("2250").Equal(buyer.Balance), "balance is %s", buyer.Balance)
	assert.True(t, decimal.RequireFromString("47750").Equal(buyer.EscrowHeld), "escrow held is %s", buyer.EscrowHeld)
}

func TestDealService_ConfirmEscrow_AlreadyEscrowed(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	deal := seedDeal(buyerID, uuid.New(), domain.DealStatusEscrow)

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	_, err := d.svc.ConfirmEscrow(ctx, buyerID, deal.ID)
	assertAppError(t, err, "DEAL_001")
}

func TestDealService_ConfirmEscrow_NotParty(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	deal := seedDeal(uuid.New(), uuid.New(), domain.DealStatusPending)
	stranger := uuid.New()

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	// Outsiders cannot tell the deal exists.
	_, err := d.svc.ConfirmEscrow(ctx, stranger, deal.ID)
	assertAppError(t, err, "NF_001")
}

func TestDealService_ConfirmEscrow_InsufficientFunds(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	deal := seedDeal(buyerID, uuid.New(), domain.DealStatusPending)
	buyer := &domain.Account{
		ID:      buyerID,
		Balance: decimal.NewFromInt(100),
	}

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.expectTx()
	d.dealRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), deal.ID).Return(deal, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), buyerID).Return(buyer, nil)

	_, err := d.svc.ConfirmEscrow(ctx, buyerID, deal.ID)
	assertAppError(t, err, "ACC_001")
	assert.Equal(t, domain.DealStatusPending, deal.Status)
}

func TestDealService_ConfirmComplete(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()
	deal := seedDeal(buyerID, sellerID, domain.DealStatusEscrow)
	value := deal.SettlementValue()

	buyer := &domain.Account{
		ID:             buyerID,
		EscrowHeld:     value,
		TotalBought:    decimal.RequireFromString("15420"),
		CompletedDeals: 47,
	}
	seller := &domain.Account{
		ID:             sellerID,
		Balance:        decimal.NewFromInt(300),
		TotalSold:      decimal.RequireFromString("8300"),
		CompletedDeals: 12,
	}

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.expectTx()
	d.dealRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), deal.ID).Return(deal, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), buyerID).Return(buyer, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), sellerID).Return(seller, nil)
	d.accountRepo.EXPECT().Update(ctx, gomock.Any(), buyer).Return(nil)
	d.accountRepo.EXPECT().Update(ctx, gomock.Any(), seller).Return(nil)
	d.dealRepo.EXPECT().Update(ctx, gomock.Any(), deal).Return(nil)
	d.notifier.EXPECT().Notify(ctx, buyerID, gomock.Any())
	d.notifier.EXPECT().Notify(ctx, sellerID, gomock.Any())

	got, err := d.svc.ConfirmComplete(ctx, sellerID, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealStatusCompleted, got.Status)

	assert.True(t, buyer.EscrowHeld.IsZero(), "escrow held is %s", buyer.EscrowHeld)
	assert.True(t, decimal.RequireFromString("63170").Equal(buyer.TotalBought), "total bought is %s", buyer.TotalBought)
	assert.Equal(t, int64(48), buyer.CompletedDeals)

	assert.True(t, decimal.RequireFromString("48050").Equal(seller.Balance), "balance is %s", seller.Balance)
	assert.True(t, decimal.RequireFromString("56050").Equal(seller.TotalSold), "total sold is %s", seller.TotalSold)
	assert.Equal(t, int64(13), seller.CompletedDeals)
}

func TestDealService_ConfirmComplete_FromPending(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	deal := seedDeal(buyerID, uuid.New(), domain.DealStatusPending)

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	// Escrow confirmation cannot be skipped.
	_, err := d.svc.ConfirmComplete(ctx, buyerID, deal.ID)
	assertAppError(t, err, "DEAL_001")
}

func TestDealService_ConfirmComplete_EffectsApplyOnce(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	deal := seedDeal(buyerID, uuid.New(), domain.DealStatusCompleted)

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	// A second completion attempt fails the transition check before any
	// fund movement.
	_, err := d.svc.ConfirmComplete(ctx, buyerID, deal.ID)
	assertAppError(t, err, "DEAL_001")
}

func TestDealService_CancelDeal_Pending(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()
	deal := seedDeal(buyerID, sellerID, domain.DealStatusPending)

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.expectTx()
	d.dealRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), deal.ID).Return(deal, nil)
	d.dealRepo.EXPECT().Update(ctx, gomock.Any(), deal).Return(nil)
	d.notifier.EXPECT().Notify(ctx, buyerID, gomock.Any())
	d.notifier.EXPECT().Notify(ctx, sellerID, gomock.Any())

	// No funds were locked, so no account is touched.
	got, err := d.svc.CancelDeal(ctx, buyerID, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealStatusCancelled, got.Status)
}

func TestDealService_CancelDeal_EscrowRefundsBuyer(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()
	deal := seedDeal(buyerID, sellerID, domain.DealStatusEscrow)
	value := deal.SettlementValue()

	buyer := &domain.Account{
		ID:         buyerID,
		Balance:    decimal.NewFromInt(2250),
		EscrowHeld: value,
	}

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.expectTx()
	d.dealRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), deal.ID).Return(deal, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), buyerID).Return(buyer, nil)
	d.accountRepo.EXPECT().Update(ctx, gomock.Any(), buyer).Return(nil)
	d.dealRepo.EXPECT().Update(ctx, gomock.Any(), deal).Return(nil)
	d.notifier.EXPECT().Notify(ctx, buyerID, gomock.Any())
	d.notifier.EXPECT().Notify(ctx, sellerID, gomock.Any())

	got, err := d.svc.CancelDeal(ctx, sellerID, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealStatusCancelled, got.Status)
	assert.True(t, decimal.RequireFromString("50000").Equal(buyer.Balance), "balance is %s", buyer.Balance)
	assert.True(t, buyer.EscrowHeld.IsZero(), "escrow held is %s", buyer.EscrowHeld)
}

func TestDealService_CancelDeal_Completed(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	deal := seedDeal(buyerID, uuid.New(), domain.DealStatusCompleted)

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	_, err := d.svc.CancelDeal(ctx, buyerID, deal.ID)
	assertAppError(t, err, "DEAL_001")
}

func TestDealService_OpenDispute(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()
	deal := seedDeal(buyerID, sellerID, domain.DealStatusEscrow)
	value := deal.SettlementValue()

	buyer := &domain.Account{ID: buyerID, EscrowHeld: value}

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.expectTx()
	d.dealRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), deal.ID).Return(deal, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, gomock.Any(), buyerID).Return(buyer, nil)
	d.accountRepo.EXPECT().Update(ctx, gomock.Any(), buyer).Return(nil)
	d.dealRepo.EXPECT().Update(ctx, gomock.Any(), deal).Return(nil)
	d.notifier.EXPECT().Notify(ctx, buyerID, gomock.Any())
	d.notifier.EXPECT().Notify(ctx, sellerID, gomock.Any())

	got, err := d.svc.OpenDispute(ctx, buyerID, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealStatusCancelled, got.Status)
	assert.True(t, value.Equal(buyer.Balance), "balance is %s", buyer.Balance)
}

func TestDealService_OpenDispute_RequiresEscrow(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	deal := seedDeal(buyerID, uuid.New(), domain.DealStatusPending)

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	// Disputes only make sense once funds are held.
	_, err := d.svc.OpenDispute(ctx, buyerID, deal.ID)
	assertAppError(t, err, "DEAL_001")
}

func TestDealService_ListDeals(t *testing.T) {
	d := setupDealService(t)
	ctx := context.Background()
	accountID := uuid.New()
	params := ports.DealListParams{AccountID: accountID, Page: 1, PageSize: 20}

	d.dealRepo.EXPECT().List(ctx, params).Return([]domain.Deal{
		*seedDeal(accountID, uuid.New(), domain.DealStatusPending),
		*seedDeal(accountID, uuid.New(), domain.DealStatusCompleted),
	}, int64(2), nil)

	deals, total, err := d.svc.ListDeals(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, deals, 2)
}
