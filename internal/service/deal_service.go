package service

import (
	"context"
	"fmt"
	"time"

	"p2p-exchange/internal/core/domain"
	"p2p-exchange/internal/core/ports"
	"p2p-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// DealServiceImpl implements ports.DealService.
//
// Transitions on a single deal are serialized through the keyed lock; fund
// movements additionally lock the affected accounts in ascending id order.
type DealServiceImpl struct {
	dealRepo    ports.DealRepository
	offerRepo   ports.OfferRepository
	accountRepo ports.AccountRepository
	transactor  ports.DBTransactor
	notifier    ports.Notifier
	locks       *KeyedLock
	log         zerolog.Logger
}

// NewDealService creates a new DealServiceImpl.
func NewDealService(
	dealRepo ports.DealRepository,
	offerRepo ports.OfferRepository,
	accountRepo ports.AccountRepository,
	transactor ports.DBTransactor,
	notifier ports.Notifier,
	locks *KeyedLock,
	log zerolog.Logger,
) *DealServiceImpl {
	return &DealServiceImpl{
		dealRepo:    dealRepo,
		offerRepo:   offerRepo,
		accountRepo: accountRepo,
		transactor:  transactor,
		notifier:    notifier,
		locks:       locks,
		log:         log,
	}
}

// ListDeals returns the account's deals, newest first.
func (s *DealServiceImpl) ListDeals(ctx context.Context, params ports.DealListParams) ([]domain.Deal, int64, error) {
	deals, total, err := s.dealRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list deals: %w", err))
	}
	return deals, total, nil
}

// InitiateBuy creates a pending deal against an offer. No funds move until
// escrow confirmation, but the buyer's spendable balance must already cover
// the settlement value.
func (s *DealServiceImpl) InitiateBuy(ctx context.Context, req ports.InitiateBuyRequest) (*domain.Deal, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	offer, err := s.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get offer: %w", err))
	}
	if offer == nil {
		return nil, apperror.ErrNotFound("offer")
	}

	if !offer.InRange(req.Amount) {
		return nil, apperror.ErrAmountOutOfRange()
	}

	buyer, err := s.accountRepo.GetByID(ctx, req.BuyerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get buyer: %w", err))
	}
	if buyer == nil {
		return nil, apperror.ErrNotFound("account")
	}
	if buyer.ID == offer.SellerID {
		return nil, apperror.Validation("cannot buy from your own offer")
	}

	value := req.Amount.Mul(offer.Price)
	if !buyer.CanSpend(value) {
		return nil, apperror.ErrInsufficientFunds()
	}

	now := time.Now().UTC()
	deal := &domain.Deal{
		ID:         uuid.New(),
		OfferID:    offer.ID,
		BuyerID:    buyer.ID,
		BuyerName:  buyer.DisplayName,
		SellerID:   offer.SellerID,
		SellerName: offer.SellerName,
		Amount:     req.Amount,
		Price:      offer.Price,
		Currency:   offer.Currency,
		Status:     domain.DealStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.dealRepo.Create(ctx, dbTx, deal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create deal: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Notify(ctx, buyer.ID, "Deal initiated")
	s.notifier.Notify(ctx, deal.SellerID, fmt.Sprintf("%s wants to buy %s %s", buyer.DisplayName, req.Amount.String(), deal.Currency))

	s.log.Info().
		Str("deal_id", deal.ID.String()).
		Str("offer_id", offer.ID.String()).
		Str("buyer_id", buyer.ID.String()).
		Str("amount", req.Amount.String()).
		Msg("deal initiated")

	return deal, nil
}

// ConfirmEscrow moves a pending deal into escrow, locking the settlement
// value out of the buyer's spendable balance.
func (s *DealServiceImpl) ConfirmEscrow(ctx context.Context, accountID, dealID uuid.UUID) (*domain.Deal, error) {
	unlockDeal := s.locks.LockDeal(dealID)
	defer unlockDeal()

	deal, err := s.loadPartyDeal(ctx, accountID, dealID)
	if err != nil {
		return nil, err
	}
	if !deal.CanTransition(domain.DealStatusEscrow) {
		return nil, apperror.ErrInvalidTransition(string(deal.Status), string(domain.DealStatusEscrow))
	}

	unlockAccounts := s.locks.LockAccounts(deal.BuyerID)
	defer unlockAccounts()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	deal, err = s.lockDealRow(ctx, dbTx, dealID)
	if err != nil {
		return nil, err
	}
	if !deal.CanTransition(domain.DealStatusEscrow) {
		return nil, apperror.ErrInvalidTransition(string(deal.Status), string(domain.DealStatusEscrow))
	}

	buyer, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, deal.BuyerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock buyer: %w", err))
	}
	if buyer == nil {
		return nil, apperror.ErrNotFound("account")
	}

	value := deal.SettlementValue()
	if !buyer.CanSpend(value) {
		return nil, apperror.ErrInsufficientFunds()
	}

	now := time.Now().UTC()
	buyer.Balance = buyer.Balance.Sub(value)
	buyer.EscrowHeld = buyer.EscrowHeld.Add(value)
	buyer.UpdatedAt = now

	deal.Status = domain.DealStatusEscrow
	deal.UpdatedAt = now

	if err := s.accountRepo.Update(ctx, dbTx, buyer); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update buyer: %w", err))
	}
	if err := s.dealRepo.Update(ctx, dbTx, deal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update deal: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Notify(ctx, deal.BuyerID, "Funds locked in escrow")
	s.notifier.Notify(ctx, deal.SellerID, "Buyer's funds are in escrow")

	s.log.Info().
		Str("deal_id", deal.ID.String()).
		Str("value", value.String()).
		Msg("deal escrowed")

	return deal, nil
}

// ConfirmComplete releases the escrowed funds to the seller and updates both
// parties' statistics. The balance and counter effects apply exactly once: a
// repeated call fails the transition check.
func (s *DealServiceImpl) ConfirmComplete(ctx context.Context, accountID, dealID uuid.UUID) (*domain.Deal, error) {
	unlockDeal := s.locks.LockDeal(dealID)
	defer unlockDeal()

	deal, err := s.loadPartyDeal(ctx, accountID, dealID)
	if err != nil {
		return nil, err
	}
	if !deal.CanTransition(domain.DealStatusCompleted) {
		return nil, apperror.ErrInvalidTransition(string(deal.Status), string(domain.DealStatusCompleted))
	}

	unlockAccounts := s.locks.LockAccounts(deal.BuyerID, deal.SellerID)
	defer unlockAccounts()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	deal, err = s.lockDealRow(ctx, dbTx, dealID)
	if err != nil {
		return nil, err
	}
	if !deal.CanTransition(domain.DealStatusCompleted) {
		return nil, apperror.ErrInvalidTransition(string(deal.Status), string(domain.DealStatusCompleted))
	}

	buyer, seller, err := s.lockParties(ctx, dbTx, deal)
	if err != nil {
		return nil, err
	}

	value := deal.SettlementValue()
	if buyer.EscrowHeld.LessThan(value) {
		return nil, apperror.InternalError(fmt.Errorf("escrow hold %s below settlement value %s for deal %s",
			buyer.EscrowHeld, value, deal.ID))
	}

	now := time.Now().UTC()
	buyer.EscrowHeld = buyer.EscrowHeld.Sub(value)
	buyer.TotalBought = buyer.TotalBought.Add(value)
	buyer.CompletedDeals++
	buyer.UpdatedAt = now

	seller.Balance = seller.Balance.Add(value)
	seller.TotalSold = seller.TotalSold.Add(value)
	seller.CompletedDeals++
	seller.UpdatedAt = now

	deal.Status = domain.DealStatusCompleted
	deal.UpdatedAt = now

	if err := s.accountRepo.Update(ctx, dbTx, buyer); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update buyer: %w", err))
	}
	if err := s.accountRepo.Update(ctx, dbTx, seller); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update seller: %w", err))
	}
	if err := s.dealRepo.Update(ctx, dbTx, deal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update deal: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Notify(ctx, deal.BuyerID, "Deal completed")
	s.notifier.Notify(ctx, deal.SellerID, "Deal completed")

	s.log.Info().
		Str("deal_id", deal.ID.String()).
		Str("value", value.String()).
		Msg("deal completed")

	return deal, nil
}

// OpenDispute cancels an escrowed deal and returns the held funds to the
// buyer. Dispute resolution beyond terminal cancellation is out of scope.
func (s *DealServiceImpl) OpenDispute(ctx context.Context, accountID, dealID uuid.UUID) (*domain.Deal, error) {
	deal, err := s.cancelWithRefund(ctx, accountID, dealID, true)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, deal.BuyerID, "Dispute opened, escrowed funds returned")
	s.notifier.Notify(ctx, deal.SellerID, "Dispute opened")

	s.log.Info().
		Str("deal_id", deal.ID.String()).
		Str("opened_by", accountID.String()).
		Msg("dispute opened")

	return deal, nil
}

// CancelDeal withdraws from a pending deal (no funds moved) or cancels an
// escrowed deal by mutual agreement (escrow refunded to the buyer).
func (s *DealServiceImpl) CancelDeal(ctx context.Context, accountID, dealID uuid.UUID) (*domain.Deal, error) {
	deal, err := s.cancelWithRefund(ctx, accountID, dealID, false)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, deal.BuyerID, "Deal cancelled")
	s.notifier.Notify(ctx, deal.SellerID, "Deal cancelled")

	s.log.Info().
		Str("deal_id", deal.ID.String()).
		Str("cancelled_by", accountID.String()).
		Msg("deal cancelled")

	return deal, nil
}

// cancelWithRefund performs the pending->cancelled and escrow->cancelled
// transitions. escrowOnly restricts the transition to escrowed deals (the
// dispute path).
func (s *DealServiceImpl) cancelWithRefund(ctx context.Context, accountID, dealID uuid.UUID, escrowOnly bool) (*domain.Deal, error) {
	unlockDeal := s.locks.LockDeal(dealID)
	defer unlockDeal()

	deal, err := s.loadPartyDeal(ctx, accountID, dealID)
	if err != nil {
		return nil, err
	}
	if !deal.CanTransition(domain.DealStatusCancelled) || (escrowOnly && deal.Status != domain.DealStatusEscrow) {
		return nil, apperror.ErrInvalidTransition(string(deal.Status), string(domain.DealStatusCancelled))
	}

	unlockAccounts := s.locks.LockAccounts(deal.BuyerID)
	defer unlockAccounts()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	deal, err = s.lockDealRow(ctx, dbTx, dealID)
	if err != nil {
		return nil, err
	}
	if !deal.CanTransition(domain.DealStatusCancelled) || (escrowOnly && deal.Status != domain.DealStatusEscrow) {
		return nil, apperror.ErrInvalidTransition(string(deal.Status), string(domain.DealStatusCancelled))
	}

	now := time.Now().UTC()

	if deal.Status == domain.DealStatusEscrow {
		buyer, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, deal.BuyerID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock buyer: %w", err))
		}
		if buyer == nil {
			return nil, apperror.ErrNotFound("account")
		}

		value := deal.SettlementValue()
		if buyer.EscrowHeld.LessThan(value) {
			return nil, apperror.InternalError(fmt.Errorf("escrow hold %s below settlement value %s for deal %s",
				buyer.EscrowHeld, value, deal.ID))
		}

		buyer.EscrowHeld = buyer.EscrowHeld.Sub(value)
		buyer.Balance = buyer.Balance.Add(value)
		buyer.UpdatedAt = now

		if err := s.accountRepo.Update(ctx, dbTx, buyer); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("refund buyer: %w", err))
		}
	}

	deal.Status = domain.DealStatusCancelled
	deal.UpdatedAt = now

	if err := s.dealRepo.Update(ctx, dbTx, deal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update deal: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return deal, nil
}

// loadPartyDeal fetches a deal and verifies accountID is one of its parties.
// Lookup failures and access by non-parties both read as not found.
func (s *DealServiceImpl) loadPartyDeal(ctx context.Context, accountID, dealID uuid.UUID) (*domain.Deal, error) {
	deal, err := s.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get deal: %w", err))
	}
	if deal == nil || !deal.IsParty(accountID) {
		return nil, apperror.ErrNotFound("deal")
	}
	return deal, nil
}

// lockDealRow re-reads the deal under the row lock so the transition check
// runs against current state.
func (s *DealServiceImpl) lockDealRow(ctx context.Context, dbTx pgx.Tx, dealID uuid.UUID) (*domain.Deal, error) {
	deal, err := s.dealRepo.GetByIDForUpdate(ctx, dbTx, dealID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock deal: %w", err))
	}
	if deal == nil {
		return nil, apperror.ErrNotFound("deal")
	}
	return deal, nil
}

// lockParties locks both accounts of a deal.
func (s *DealServiceImpl) lockParties(ctx context.Context, dbTx pgx.Tx, deal *domain.Deal) (buyer, seller *domain.Account, err error) {
	// Row lock order must match KeyedLock.LockAccounts: ascending id.
	first, second := deal.BuyerID, deal.SellerID
	if second.String() < first.String() {
		first, second = second, first
	}

	a, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, first)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	b, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, second)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if a == nil || b == nil {
		return nil, nil, apperror.ErrNotFound("account")
	}

	if a.ID == deal.BuyerID {
		return a, b, nil
	}
	return b, a, nil
}
