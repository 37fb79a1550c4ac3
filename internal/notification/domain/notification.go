package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Notification represents one alert relayed to the admin chat
type Notification struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	BookID    string         `json:"book_id" gorm:"index"`
	Title     string         `json:"title"`
	Priority  string         `json:"priority" gorm:"index"`
	Message   string         `json:"message" gorm:"not null"`
	Channel   string         `json:"channel" gorm:"default:'chat'"`
	Recipient string         `json:"recipient"`
	Status    string         `json:"status" gorm:"default:'pending';index"`
	Attempts  int            `json:"attempts"`
	SentAt    *time.Time     `json:"sent_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Notification) TableName() string {
	return "notifications"
}

// Notification statuses
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the contract for notification data access
type NotificationRepository interface {
	Create(notification *Notification) error
	FindByID(id uint) (*Notification, error)
	FindAll(limit, offset int) ([]Notification, error)
	FindByStatus(status string, limit, offset int) ([]Notification, error)
	Update(notification *Notification) error
	Count() (int64, error)
}
