package services

import (
	"context"
	"errors"
	"testing"

	"github.com/librivault/librivault-cli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationAPI struct {
	count      int64
	countErr   error
	countCalls int
	readErr    error
	readIDs    []int64
}

func (f *fakeNotificationAPI) ListNotifications(ctx context.Context, page, size int) (*models.Paged[models.Notification], error) {
	return &models.Paged[models.Notification]{}, nil
}

func (f *fakeNotificationAPI) UnreadCount(ctx context.Context) (int64, error) {
	f.countCalls++
	return f.count, f.countErr
}

func (f *fakeNotificationAPI) MarkNotificationRead(ctx context.Context, id int64) error {
	if f.readErr != nil {
		return f.readErr
	}
	f.readIDs = append(f.readIDs, id)
	return nil
}

func TestUnreadIsCached(t *testing.T) {
	api := &fakeNotificationAPI{count: 3}
	s := NewNotificationService(api)

	n, err := s.Unread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	// Second read hits the cache, not the server.
	_, err = s.Unread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, api.countCalls)
}

func TestMarkReadDecrementsCache(t *testing.T) {
	api := &fakeNotificationAPI{count: 2}
	s := NewNotificationService(api)

	_, err := s.Unread(context.Background())
	require.NoError(t, err)

	require.NoError(t, s.MarkRead(context.Background(), 11))
	n, err := s.Unread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, []int64{11}, api.readIDs)
}

func TestMarkReadFailureLeavesCache(t *testing.T) {
	api := &fakeNotificationAPI{count: 2}
	s := NewNotificationService(api)

	_, err := s.Unread(context.Background())
	require.NoError(t, err)

	api.readErr = errors.New("boom")
	require.Error(t, s.MarkRead(context.Background(), 11))

	n, err := s.Unread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestResetDropsCache(t *testing.T) {
	api := &fakeNotificationAPI{count: 5}
	s := NewNotificationService(api)

	_, err := s.Unread(context.Background())
	require.NoError(t, err)

	s.Reset()
	api.count = 0

	n, err := s.Unread(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.Equal(t, 2, api.countCalls, "reset forces a re-fetch")
}
