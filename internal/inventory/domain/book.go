package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockStatus is the categorical availability state of a book.
type StockStatus string

const (
	StatusInStock      StockStatus = "in_stock"
	StatusLowStock     StockStatus = "low_stock"
	StatusOutOfStock   StockStatus = "out_of_stock"
	StatusDiscontinued StockStatus = "discontinued"
	StatusPreOrder     StockStatus = "pre_order"
	StatusComingSoon   StockStatus = "coming_soon"
)

// Visibility controls whether a book is shown in the storefront listing.
type Visibility string

const (
	VisibilityVisible Visibility = "visible"
	VisibilityHidden  Visibility = "hidden"
)

// DefaultMinThreshold is applied when a book is created without an explicit
// low-stock boundary. All default-value policy lives here, not at call sites.
const DefaultMinThreshold = 5

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrInvalidOperation = errors.New("invalid batch operation")
)

// Book represents one sellable title's inventory state
type Book struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid"`
	Title        string          `json:"title" gorm:"not null"`
	Author       string          `json:"author"`
	Quantity     int             `json:"quantity" gorm:"not null;default:0"`
	MinThreshold int             `json:"min_threshold" gorm:"not null;default:5"`
	MaxThreshold int             `json:"max_threshold"` // 0 means unset
	UnitPrice    decimal.Decimal `json:"unit_price" gorm:"type:numeric(12,2)"`
	Status       StockStatus     `json:"status" gorm:"not null;index;default:'out_of_stock'"`
	Visibility   Visibility      `json:"visibility" gorm:"not null;default:'visible'"`

	IsAvailable          bool `json:"is_available" gorm:"default:false"`
	IsPreOrder           bool `json:"is_pre_order" gorm:"default:false"`
	AllowPreOrder        bool `json:"allow_pre_order" gorm:"default:false"`
	EnableWaitlist       bool `json:"enable_waitlist" gorm:"default:false"`
	ShowWhenDiscontinued bool `json:"show_when_discontinued" gorm:"default:false"`

	// Externally computed demand estimate, consumed by the forecaster
	AverageSalesPerDay decimal.Decimal `json:"average_sales_per_day" gorm:"type:numeric(10,4)"`

	LastRestocked *time.Time     `json:"last_restocked,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Book) TableName() string {
	return "books"
}

// Resolve maps a quantity and low-stock boundary to the quantity-derived
// status. It is total: every input pair yields exactly one of the three
// quantity-derived statuses. The boundary is inclusive on the low side.
func Resolve(quantity, minThreshold int) StockStatus {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= minThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// IsAdministrative reports whether a status is entered only by explicit
// override and must not be overwritten by quantity-driven recomputation.
func (s StockStatus) IsAdministrative() bool {
	return s == StatusDiscontinued || s == StatusPreOrder || s == StatusComingSoon
}

// FillTarget returns the quantity a reorder should fill up to. MaxThreshold
// when configured, otherwise four times the low-stock boundary.
func (b *Book) FillTarget() int {
	if b.MaxThreshold > 0 {
		return b.MaxThreshold
	}
	return 4 * b.MinThreshold
}

// StockValue returns quantity times unit price
func (b *Book) StockValue() decimal.Decimal {
	return b.UnitPrice.Mul(decimal.NewFromInt(int64(b.Quantity)))
}

// BookRepository defines the contract for book data access
type BookRepository interface {
	Create(book *Book) error
	FindByID(id string) (*Book, error)
	FindAll(limit, offset int) ([]Book, error)
	FindByStatus(status StockStatus, limit, offset int) ([]Book, error)
	Update(book *Book) error
	Delete(id string) error
	Count() (int64, error)

	// SaveWithChange persists a mutated book and its change-log entry in one
	// transaction. The change log is append-only.
	SaveWithChange(book *Book, change *StockChange) error
	ListChanges(bookID string, limit int) ([]StockChange, error)
}
