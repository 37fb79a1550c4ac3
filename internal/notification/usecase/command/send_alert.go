package command

import (
	"context"
	"fmt"
	"time"

	"github.com/bookhaven/bookstore-admin/internal/notification/domain"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// MessageSender delivers a rendered alert to the admin chat
type MessageSender interface {
	SendMessage(ctx context.Context, text string) error
}

// SendAlertCommand represents a stock alert to relay
type SendAlertCommand struct {
	BookID   string
	Title    string
	Quantity int
	Priority string
	Message  string
}

// SendAlertHandler records and delivers stock alerts. The record is
// written before delivery so a crashed send is visible as pending.
type SendAlertHandler struct {
	repo   domain.NotificationRepository
	sender MessageSender
}

// NewSendAlertHandler creates a new send alert handler
func NewSendAlertHandler(repo domain.NotificationRepository, sender MessageSender) *SendAlertHandler {
	return &SendAlertHandler{repo: repo, sender: sender}
}

// Handle executes the send alert command
func (h *SendAlertHandler) Handle(ctx context.Context, cmd SendAlertCommand) (*domain.Notification, error) {
	if cmd.Message == "" {
		return nil, fmt.Errorf("message is required")
	}

	notification := &domain.Notification{
		BookID:    cmd.BookID,
		Title:     cmd.Title,
		Priority:  cmd.Priority,
		Message:   cmd.Message,
		Channel:   "chat",
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}

	notification.Attempts++
	text := fmt.Sprintf("[%s] %s", cmd.Priority, cmd.Message)
	if err := h.sender.SendMessage(ctx, text); err != nil {
		notification.Status = domain.StatusFailed
		notification.UpdatedAt = time.Now()
		if updateErr := h.repo.Update(notification); updateErr != nil {
			logger.Error(ctx).Err(updateErr).Uint("notification_id", notification.ID).Msg("Failed to mark notification as failed")
		}
		return notification, fmt.Errorf("failed to deliver alert: %w", err)
	}

	now := time.Now()
	notification.Status = domain.StatusSent
	notification.SentAt = &now
	notification.UpdatedAt = now
	if err := h.repo.Update(notification); err != nil {
		return notification, fmt.Errorf("failed to mark notification as sent: %w", err)
	}

	return notification, nil
}
