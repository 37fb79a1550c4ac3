package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Loyalty tiers
const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Tier boundaries in store currency
var (
	silverThreshold = decimal.NewFromInt(500)
	goldThreshold   = decimal.NewFromInt(2000)
)

// Customer represents a storefront customer as seen by the admin dashboard
type Customer struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Email       string          `json:"email" gorm:"uniqueIndex;not null"`
	FullName    string          `json:"full_name" gorm:"not null"`
	MessagingID string          `json:"messaging_id,omitempty"`
	LoyaltyTier string          `json:"loyalty_tier" gorm:"not null;default:'bronze'"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent" gorm:"type:numeric(12,2)"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"` // Soft delete
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// TierFor returns the loyalty tier earned by a lifetime spend
func TierFor(totalSpent decimal.Decimal) string {
	switch {
	case totalSpent.GreaterThanOrEqual(goldThreshold):
		return TierGold
	case totalSpent.GreaterThanOrEqual(silverThreshold):
		return TierSilver
	default:
		return TierBronze
	}
}

// RecordPurchase applies one placed order to the customer's lifetime
// totals. The tier never moves down; refunds are handled out of band.
func (c *Customer) RecordPurchase(total decimal.Decimal, now time.Time) {
	c.TotalOrders++
	c.TotalSpent = c.TotalSpent.Add(total)

	earned := TierFor(c.TotalSpent)
	if tierRank(earned) > tierRank(c.LoyaltyTier) {
		c.LoyaltyTier = earned
	}
	c.UpdatedAt = now
}

func tierRank(tier string) int {
	switch tier {
	case TierGold:
		return 3
	case TierSilver:
		return 2
	default:
		return 1
	}
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(id uint) (*Customer, error)
	FindByEmail(email string) (*Customer, error)
	FindAll(limit, offset int) ([]Customer, error)
	FindByTier(tier string, limit, offset int) ([]Customer, error)
	Update(customer *Customer) error
	Delete(id uint) error
	Count() (int64, error)
	CountByTier(tier string) (int64, error)
}
