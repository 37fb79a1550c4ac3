package domain

import "time"

// StockChange is an append-only audit entry recorded for every quantity
// mutation, including no-op adjustments. Entries are never updated or
// deleted here; retention is an operational concern.
type StockChange struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	BookID      string    `json:"book_id" gorm:"not null;index"`
	OldQuantity int       `json:"old_quantity" gorm:"not null"`
	NewQuantity int       `json:"new_quantity" gorm:"not null"`
	Reason      string    `json:"reason"`
	Actor       string    `json:"actor" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name
func (StockChange) TableName() string {
	return "stock_changes"
}
