package command

import (
	"context"
	"errors"
	"testing"

	"github.com/bookhaven/bookstore-admin/internal/notification/domain"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

func init() {
	logger.Init("notification-command-test", true)
}

// fakeNotificationRepository is an in-memory NotificationRepository
type fakeNotificationRepository struct {
	notifications []domain.Notification
	nextID        uint
}

func (r *fakeNotificationRepository) Create(n *domain.Notification) error {
	r.nextID++
	n.ID = r.nextID
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeNotificationRepository) FindByID(id uint) (*domain.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (r *fakeNotificationRepository) FindAll(limit, offset int) ([]domain.Notification, error) {
	return r.notifications, nil
}

func (r *fakeNotificationRepository) FindByStatus(status string, limit, offset int) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range r.notifications {
		if n.Status == status {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepository) Update(n *domain.Notification) error {
	for i := range r.notifications {
		if r.notifications[i].ID == n.ID {
			r.notifications[i] = *n
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (r *fakeNotificationRepository) Count() (int64, error) {
	return int64(len(r.notifications)), nil
}

// fakeSender records delivered messages
type fakeSender struct {
	messages []string
	err      error
}

func (s *fakeSender) SendMessage(ctx context.Context, text string) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, text)
	return nil
}

func TestSendAlertRequiresMessage(t *testing.T) {
	handler := NewSendAlertHandler(&fakeNotificationRepository{}, &fakeSender{})

	if _, err := handler.Handle(context.Background(), SendAlertCommand{}); err == nil {
		t.Fatal("Handle() accepted empty message")
	}
}

func TestSendAlertDeliversAndMarksSent(t *testing.T) {
	repo := &fakeNotificationRepository{}
	sender := &fakeSender{}
	handler := NewSendAlertHandler(repo, sender)

	notification, err := handler.Handle(context.Background(), SendAlertCommand{
		BookID:   "b1",
		Title:    "Dune",
		Priority: "critical",
		Message:  "Dune is out of stock",
	})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if notification.Status != domain.StatusSent {
		t.Errorf("status = %q, want %q", notification.Status, domain.StatusSent)
	}
	if notification.SentAt == nil {
		t.Error("SentAt not set on successful delivery")
	}
	if len(sender.messages) != 1 {
		t.Fatalf("delivered %d messages, want 1", len(sender.messages))
	}
	if want := "[critical] Dune is out of stock"; sender.messages[0] != want {
		t.Errorf("message = %q, want %q", sender.messages[0], want)
	}
}

func TestSendAlertDeliveryFailureKeepsRecord(t *testing.T) {
	repo := &fakeNotificationRepository{}
	sender := &fakeSender{err: errors.New("bot unreachable")}
	handler := NewSendAlertHandler(repo, sender)

	notification, err := handler.Handle(context.Background(), SendAlertCommand{
		BookID:   "b1",
		Title:    "Dune",
		Priority: "warning",
		Message:  "Dune is running low",
	})
	if err == nil {
		t.Fatal("Handle() did not report delivery failure")
	}
	if notification == nil {
		t.Fatal("failed delivery returned no notification record")
	}

	if notification.Status != domain.StatusFailed {
		t.Errorf("status = %q, want %q", notification.Status, domain.StatusFailed)
	}
	if notification.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", notification.Attempts)
	}

	// The persisted copy carries the failed status too
	stored, findErr := repo.FindByID(notification.ID)
	if findErr != nil {
		t.Fatalf("notification not persisted: %v", findErr)
	}
	if stored.Status != domain.StatusFailed {
		t.Errorf("stored status = %q, want %q", stored.Status, domain.StatusFailed)
	}
}
