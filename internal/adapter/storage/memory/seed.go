package memory

import (
	"context"
	"fmt"
	"time"

	"p2p-exchange/internal/core/domain"
	"p2p-exchange/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemoPassword is the password every seeded demo account accepts.
const DemoPassword = "demo1234"

type seedSeller struct {
	username string
	price    string
	min      int64
	max      int64
	rating   float64
	deals    int64
}

// Seed loads a small demo dataset: a buyer account with trading history and
// three sellers with open offers.
func Seed(ctx context.Context, accounts *AccountRepository, offers *OfferRepository, hashSvc ports.HashService) error {
	passwordHash, err := hashSvc.Hash(DemoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	now := time.Now().UTC()

	demo := &domain.Account{
		ID:             uuid.New(),
		Username:       "demo",
		DisplayName:    "demo",
		PasswordHash:   passwordHash,
		Role:           domain.RoleBuyer,
		Balance:        decimal.RequireFromString("1250.50"),
		EscrowHeld:     decimal.Zero,
		TotalBought:    decimal.RequireFromString("15420"),
		TotalSold:      decimal.RequireFromString("8300"),
		CompletedDeals: 47,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := accounts.Create(ctx, demo); err != nil {
		return fmt.Errorf("seed account %q: %w", demo.Username, err)
	}

	sellers := []seedSeller{
		{"CryptoKing", "95.50", 100, 5000, 4.9, 1250},
		{"TraderPro", "95.30", 50, 3000, 4.8, 890},
		{"BitMaster", "95.75", 200, 10000, 5.0, 2100},
	}

	for _, s := range sellers {
		account := &domain.Account{
			ID:             uuid.New(),
			Username:       s.username,
			DisplayName:    s.username,
			PasswordHash:   passwordHash,
			Role:           domain.RoleSeller,
			Balance:        decimal.RequireFromString("100000"),
			EscrowHeld:     decimal.Zero,
			TotalBought:    decimal.Zero,
			TotalSold:      decimal.Zero,
			CompletedDeals: s.deals,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := accounts.Create(ctx, account); err != nil {
			return fmt.Errorf("seed account %q: %w", s.username, err)
		}

		offer := &domain.Offer{
			ID:         uuid.New(),
			SellerID:   account.ID,
			SellerName: account.DisplayName,
			Price:      decimal.RequireFromString(s.price),
			MinAmount:  decimal.NewFromInt(s.min),
			MaxAmount:  decimal.NewFromInt(s.max),
			Currency:   "USDT",
			Rating:     s.rating,
			Deals:      s.deals,
			CreatedAt:  now,
		}
		if err := offers.Create(ctx, offer); err != nil {
			return fmt.Errorf("seed offer for %q: %w", s.username, err)
		}
	}

	return nil
}
