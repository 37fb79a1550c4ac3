package query

import (
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/notification/domain"
)

// ListNotificationsQuery represents the query to list notifications,
// optionally filtered by delivery status.
type ListNotificationsQuery struct {
	Status string
	Limit  int
	Offset int
}

// ListNotificationsHandler handles list notifications query
type ListNotificationsHandler struct {
	repo domain.NotificationRepository
}

// NewListNotificationsHandler creates a new list notifications handler
func NewListNotificationsHandler(repo domain.NotificationRepository) *ListNotificationsHandler {
	return &ListNotificationsHandler{repo: repo}
}

// Handle executes the list notifications query
func (h *ListNotificationsHandler) Handle(q ListNotificationsQuery) ([]domain.Notification, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Limit > 500 {
		q.Limit = 500
	}

	var notifications []domain.Notification
	var err error
	if q.Status != "" {
		notifications, err = h.repo.FindByStatus(q.Status, q.Limit, q.Offset)
	} else {
		notifications, err = h.repo.FindAll(q.Limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}
