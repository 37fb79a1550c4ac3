package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name  string
		spent string
		want  string
	}{
		{"zero spend", "0", TierBronze},
		{"below silver", "499.99", TierBronze},
		{"silver boundary", "500", TierSilver},
		{"between tiers", "1200.50", TierSilver},
		{"gold boundary", "2000", TierGold},
		{"beyond gold", "9999", TierGold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spent, err := decimal.NewFromString(tt.spent)
			if err != nil {
				t.Fatalf("bad test input: %v", err)
			}
			if got := TierFor(spent); got != tt.want {
				t.Errorf("TierFor(%s) = %q, want %q", tt.spent, got, tt.want)
			}
		})
	}
}

func TestRecordPurchaseAccumulates(t *testing.T) {
	now := time.Now()
	c := Customer{LoyaltyTier: TierBronze, TotalSpent: decimal.NewFromInt(100)}

	c.RecordPurchase(decimal.NewFromInt(150), now)

	if c.TotalOrders != 1 {
		t.Errorf("TotalOrders = %d, want 1", c.TotalOrders)
	}
	if !c.TotalSpent.Equal(decimal.NewFromInt(250)) {
		t.Errorf("TotalSpent = %s, want 250", c.TotalSpent)
	}
	if c.LoyaltyTier != TierBronze {
		t.Errorf("LoyaltyTier = %q, want %q", c.LoyaltyTier, TierBronze)
	}
}

func TestRecordPurchasePromotesTier(t *testing.T) {
	now := time.Now()
	c := Customer{LoyaltyTier: TierBronze, TotalSpent: decimal.NewFromInt(450)}

	c.RecordPurchase(decimal.NewFromInt(100), now)

	if c.LoyaltyTier != TierSilver {
		t.Errorf("LoyaltyTier = %q, want %q", c.LoyaltyTier, TierSilver)
	}
}

func TestRecordPurchaseNeverDemotes(t *testing.T) {
	now := time.Now()

	// Gold granted manually despite low spend; a purchase must not lower it
	c := Customer{LoyaltyTier: TierGold, TotalSpent: decimal.NewFromInt(50)}
	c.RecordPurchase(decimal.NewFromInt(10), now)

	if c.LoyaltyTier != TierGold {
		t.Errorf("LoyaltyTier = %q, want %q", c.LoyaltyTier, TierGold)
	}
}
