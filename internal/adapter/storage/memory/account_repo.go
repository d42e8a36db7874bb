// Package memory provides an in-process storage backend. It implements the
// same repository ports as the postgres adapter, so the exchange can run
// self-contained for demos and tests. All methods return copies; mutations
// only become visible through Update.
package memory

import (
	"context"
	"fmt"
	"sync"

	"p2p-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository is an in-memory implementation of ports.AccountRepository.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]domain.Account
}

// NewAccountRepository creates an empty in-memory account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[uuid.UUID]domain.Account)}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Username == account.Username {
			return fmt.Errorf("username %q already exists", account.Username)
		}
	}
	r.accounts[account.ID] = *account
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.accounts {
		if account.Username == username {
			out := account
			return &out, nil
		}
	}
	return nil, nil
}

// GetByIDForUpdate behaves like GetByID; row locking is the service layer's
// keyed lock here.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *AccountRepository) Update(ctx context.Context, tx pgx.Tx, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.ID]; !ok {
		return fmt.Errorf("account %s not found", account.ID)
	}
	r.accounts[account.ID] = *account
	return nil
}
