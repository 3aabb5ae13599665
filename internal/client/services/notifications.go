package services

import (
	"context"
	"sync"

	"github.com/librivault/librivault-cli/internal/client/models"
)

// NotificationAPI is the notification slice of the API client.
type NotificationAPI interface {
	ListNotifications(ctx context.Context, page, size int) (*models.Paged[models.Notification], error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

// NotificationService lists notifications and keeps a small cached unread
// counter so screens can show a badge without a round trip per render.
type NotificationService struct {
	api NotificationAPI

	mu     sync.Mutex
	unread int64
	loaded bool
}

func NewNotificationService(api NotificationAPI) *NotificationService {
	return &NotificationService{api: api}
}

func (s *NotificationService) List(ctx context.Context, page int) (*models.Paged[models.Notification], error) {
	return s.api.ListNotifications(ctx, page, DefaultPageSize)
}

// Unread returns the cached unread count, fetching it on first use.
func (s *NotificationService) Unread(ctx context.Context) (int64, error) {
	s.mu.Lock()
	if s.loaded {
		n := s.unread
		s.mu.Unlock()
		return n, nil
	}
	s.mu.Unlock()
	return s.RefreshUnread(ctx)
}

// RefreshUnread re-fetches the unread count from the server.
func (s *NotificationService) RefreshUnread(ctx context.Context) (int64, error) {
	n, err := s.api.UnreadCount(ctx)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	s.unread = n
	s.loaded = true
	s.mu.Unlock()
	return n, nil
}

// MarkRead marks one notification read and decrements the cached counter.
func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	if s.loaded && s.unread > 0 {
		s.unread--
	}
	s.mu.Unlock()
	return nil
}

// Reset drops the cached counter, e.g. on logout.
func (s *NotificationService) Reset() {
	s.mu.Lock()
	s.unread = 0
	s.loaded = false
	s.mu.Unlock()
}
