package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleBuyer.Valid())
	assert.True(t, RoleSeller.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestAccount_CanSpend(t *testing.T) {
	a := &Account{Balance: decimal.RequireFromString("1250.50")}

	assert.True(t, a.CanSpend(decimal.RequireFromString("1250.50")))
	assert.True(t, a.CanSpend(decimal.RequireFromString("0.01")))
	assert.False(t, a.CanSpend(decimal.RequireFromString("1250.51")))
}

func TestOffer_InRange(t *testing.T) {
	o := &Offer{
		MinAmount: decimal.NewFromInt(100),
		MaxAmount: decimal.NewFromInt(5000),
	}

	assert.True(t, o.InRange(decimal.NewFromInt(100)))
	assert.True(t, o.InRange(decimal.NewFromInt(500)))
	assert.True(t, o.InRange(decimal.NewFromInt(5000)))
	assert.False(t, o.InRange(decimal.NewFromInt(99)))
	assert.False(t, o.InRange(decimal.NewFromInt(5001)))
}

func TestDeal_SettlementValue(t *testing.T) {
	d := &Deal{
		Amount: decimal.NewFromInt(500),
		Price:  decimal.RequireFromString("95.50"),
	}

	assert.True(t, d.SettlementValue().Equal(decimal.RequireFromString("47750.00")))
}

func TestDeal_CanTransition(t *testing.T) {
	cases := []struct {
		from    DealStatus
		to      DealStatus
		allowed bool
	}{
		{DealStatusPending, DealStatusEscrow, true},
		{DealStatusPending, DealStatusCancelled, true},
		{DealStatusPending, DealStatusCompleted, false},
		{DealStatusEscrow, DealStatusCompleted, true},
		{DealStatusEscrow, DealStatusCancelled, true},
		{DealStatusEscrow, DealStatusPending, false},
		{DealStatusCompleted, DealStatusCancelled, false},
		{DealStatusCompleted, DealStatusEscrow, false},
		{DealStatusCancelled, DealStatusPending, false},
		{DealStatusCancelled, DealStatusCompleted, false},
	}

	for _, tc := range cases {
		d := &Deal{Status: tc.from}
		assert.Equalf(t, tc.allowed, d.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestDeal_Terminality(t *testing.T) {
	assert.False(t, (&Deal{Status: DealStatusPending}).IsTerminal())
	assert.False(t, (&Deal{Status: DealStatusEscrow}).IsTerminal())
	assert.True(t, (&Deal{Status: DealStatusCompleted}).IsTerminal())
	assert.True(t, (&Deal{Status: DealStatusCancelled}).IsTerminal())

	assert.True(t, (&Deal{Status: DealStatusEscrow}).IsActive())
	assert.False(t, (&Deal{Status: DealStatusCancelled}).IsActive())
}

func TestDeal_Perspective(t *testing.T) {
	buyerID := uuid.New()
	sellerID := uuid.New()
	d := &Deal{
		BuyerID:    buyerID,
		BuyerName:  "alice",
		SellerID:   sellerID,
		SellerName: "CryptoKing",
	}

	assert.Equal(t, DealSideBuy, d.SideFor(buyerID))
	assert.Equal(t, DealSideSell, d.SideFor(sellerID))
	assert.Equal(t, "CryptoKing", d.CounterpartyFor(buyerID))
	assert.Equal(t, "alice", d.CounterpartyFor(sellerID))

	assert.True(t, d.IsParty(buyerID))
	assert.True(t, d.IsParty(sellerID))
	assert.False(t, d.IsParty(uuid.New()))
}
