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
	"github.com/shopspring/decimal"
)

// AccountServiceImpl implements ports.AccountService.
type AccountServiceImpl struct {
	accountRepo ports.AccountRepository
	transactor  ports.DBTransactor
	notifier    ports.Notifier
	locks       *KeyedLock
	log         zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(
	accountRepo ports.AccountRepository,
	transactor ports.DBTransactor,
	notifier ports.Notifier,
	locks *KeyedLock,
	log zerolog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		transactor:  transactor,
		notifier:    notifier,
		locks:       locks,
		log:         log,
	}
}

// GetAccount returns a snapshot of the account.
func (s *AccountServiceImpl) GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}
	return account, nil
}

// SwitchRole sets the trading mode unconditionally. Balances and counters are
// never touched.
func (s *AccountServiceImpl) SwitchRole(ctx context.Context, accountID uuid.UUID, target domain.Role) (*domain.Account, error) {
	if !target.Valid() {
		return nil, apperror.ErrInvalidRole()
	}

	unlock := s.locks.LockAccounts(accountID)
	defer unlock()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}

	account.Role = target
	account.UpdatedAt = time.Now().UTC()

	if err := s.accountRepo.Update(ctx, dbTx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update account: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	mode := "Buyer"
	if target == domain.RoleSeller {
		mode = "Seller"
	}
	s.notifier.Notify(ctx, accountID, fmt.Sprintf("%s mode activated", mode))

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("role", string(target)).
		Msg("role switched")

	return account, nil
}

// Deposit adds amount to the spendable balance.
func (s *AccountServiceImpl) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Account, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	unlock := s.locks.LockAccounts(accountID)
	defer unlock()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}

	account.Balance = account.Balance.Add(amount)
	account.UpdatedAt = time.Now().UTC()

	if err := s.accountRepo.Update(ctx, dbTx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Notify(ctx, accountID, fmt.Sprintf("Deposited %s", amount.StringFixed(2)))

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("amount", amount.String()).
		Msg("deposit applied")

	return account, nil
}

// Withdraw removes amount from the spendable balance. Escrowed funds are not
// withdrawable.
func (s *AccountServiceImpl) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*domain.Account, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	unlock := s.locks.LockAccounts(accountID)
	defer unlock()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}

	if !account.CanSpend(amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	account.Balance = account.Balance.Sub(amount)
	account.UpdatedAt = time.Now().UTC()

	if err := s.accountRepo.Update(ctx, dbTx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifier.Notify(ctx, accountID, fmt.Sprintf("Withdrew %s", amount.StringFixed(2)))

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("amount", amount.String()).
		Msg("withdrawal applied")

	return account, nil
}
