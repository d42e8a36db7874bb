package service

import (
	"context"
	"testing"

	"p2p-exchange/internal/core/domain"
	"p2p-exchange/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type accountTestDeps struct {
	svc         *AccountServiceImpl
	accountRepo *mocks.MockAccountRepository
	transactor  *mocks.MockDBTransactor
	notifier    *mocks.MockNotifier
	ctrl        *gomock.Controller
}

func setupAccountService(t *testing.T) *accountTestDeps {
	ctrl := gomock.NewController(t)
	d := &accountTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAccountService(d.accountRepo, d.transactor, d.notifier, NewKeyedLock(), zerolog.Nop())
	return d
}

func seedAccount(id uuid.UUID) *domain.Account {
	return &domain.Account{
		ID:             id,
		Username:       "trader",
		DisplayName:    "trader",
		Role:           domain.RoleBuyer,
		Balance:        decimal.RequireFromString("1250.50"),
		EscrowHeld:     decimal.Zero,
		TotalBought:    decimal.NewFromInt(15420),
		TotalSold:      decimal.NewFromInt(8300),
		CompletedDeals: 47,
	}
}

func TestAccountService_GetAccount(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	d.accountRepo.EXPECT().GetByID(ctx, id).Return(seedAccount(id), nil)

	account, err := d.svc.GetAccount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	d.accountRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	_, err := d.svc.GetAccount(ctx, id)
	assertAppError(t, err, "NF_001")
}

func TestAccountService_SwitchRole_PreservesBalanceAndCounters(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	tx := &mockTx{}
	account := seedAccount(id)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(account, nil)
	d.accountRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().Notify(ctx, id, "Seller mode activated")

	updated, err := d.svc.SwitchRole(ctx, id, domain.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSeller, updated.Role)
	assert.True(t, updated.Balance.Equal(decimal.RequireFromString("1250.50")))
	assert.True(t, updated.TotalBought.Equal(decimal.NewFromInt(15420)))
	assert.True(t, updated.TotalSold.Equal(decimal.NewFromInt(8300)))
	assert.Equal(t, int64(47), updated.CompletedDeals)
}

func TestAccountService_SwitchRole_InvalidRole(t *testing.T) {
	d := setupAccountService(t)

	_, err := d.svc.SwitchRole(context.Background(), uuid.New(), domain.Role("admin"))
	assertAppError(t, err, "ACC_003")
}

func TestAccountService_Deposit(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(seedAccount(id), nil)
	d.accountRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().Notify(ctx, id, gomock.Any())

	updated, err := d.svc.Deposit(ctx, id, decimal.RequireFromString("100.25"))
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.RequireFromString("1350.75")))
}

func TestAccountService_Deposit_InvalidAmount(t *testing.T) {
	d := setupAccountService(t)

	_, err := d.svc.Deposit(context.Background(), uuid.New(), decimal.Zero)
	assertAppError(t, err, "ACC_002")

	_, err = d.svc.Deposit(context.Background(), uuid.New(), decimal.NewFromInt(-5))
	assertAppError(t, err, "ACC_002")
}

func TestAccountService_Withdraw(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(seedAccount(id), nil)
	d.accountRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().Notify(ctx, id, gomock.Any())

	updated, err := d.svc.Withdraw(ctx, id, decimal.RequireFromString("250.50"))
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(1000)))
}

func TestAccountService_Withdraw_InsufficientFunds(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	tx := &mockTx{}
	account := seedAccount(id)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(account, nil)
	// No Update expected: validate-then-apply leaves the account untouched.

	_, err := d.svc.Withdraw(ctx, id, decimal.NewFromInt(2000))
	assertAppError(t, err, "ACC_001")
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("1250.50")))
}

func TestAccountService_Withdraw_EscrowNotSpendable(t *testing.T) {
	d := setupAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	tx := &mockTx{}
	account := seedAccount(id)
	account.Balance = decimal.NewFromInt(100)
	account.EscrowHeld = decimal.NewFromInt(500)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(account, nil)

	_, err := d.svc.Withdraw(ctx, id, decimal.NewFromInt(200))
	assertAppError(t, err, "ACC_001")
}
