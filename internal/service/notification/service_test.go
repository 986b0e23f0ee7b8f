package notification

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjahub/roster-backend-go/internal/domain/notification"
	"github.com/kerjahub/roster-backend-go/internal/domain/user"
)

// memoryNotificationRepo is mutex-guarded because the dispatcher workers
// write to it concurrently.
type memoryNotificationRepo struct {
	mu      sync.Mutex
	records []notification.Notification
}

func (m *memoryNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = uuid.NewString()
	m.records = append(m.records, *n)
	return nil
}

func (m *memoryNotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool, limit, offset int) ([]notification.Notification, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []notification.Notification
	for _, n := range m.records {
		if n.UserID != userID || (unreadOnly && n.IsRead) {
			continue
		}
		matched = append(matched, n)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (m *memoryNotificationRepo) MarkAsRead(_ context.Context, userID string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, n := range m.records {
		if n.ID != id {
			continue
		}
		if n.UserID != userID {
			return notification.ErrNotRecipient
		}
		m.records[i].IsRead = true
		return nil
	}
	return notification.ErrNotificationNotFound
}

func (m *memoryNotificationRepo) DeleteOwn(_ context.Context, userID string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, n := range m.records {
		if n.ID != id {
			continue
		}
		if n.UserID != userID {
			return notification.ErrNotRecipient
		}
		m.records = append(m.records[:i], m.records[i+1:]...)
		return nil
	}
	return notification.ErrNotificationNotFound
}

type stubUserRepo struct{}

func (stubUserRepo) GetByID(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (stubUserRepo) UpdateOwnPushToken(context.Context, string, string) error { return nil }
func (stubUserRepo) GetDistinctPushTokens(context.Context) ([]string, error)  { return nil, nil }

func TestQueue_PersistsToInbox(t *testing.T) {
	t.Parallel()

	repo := &memoryNotificationRepo{}
	svc := NewNotificationService(repo, stubUserRepo{}, nil)

	for i := 0; i < 5; i++ {
		err := svc.Queue(context.Background(), notification.QueueRequest{
			UserID: "user-1",
			Type:   notification.TypeScheduleStatusChange,
			Title:  "Jadwal Disetujui",
			Body:   "Jadwal Anda telah diperbarui.",
		})
		require.NoError(t, err)
	}

	// Stop drains the queue before returning.
	svc.Stop()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.records, 5)
}

func TestQueue_AfterStopFails(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(&memoryNotificationRepo{}, stubUserRepo{}, nil)
	svc.Stop()

	err := svc.Queue(context.Background(), notification.QueueRequest{UserID: "user-1"})
	assert.Error(t, err)
}

func TestSendTransient_DisabledClientReportsFailure(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(&memoryNotificationRepo{}, stubUserRepo{}, nil)
	defer svc.Stop()

	ok := svc.SendTransient(context.Background(), "token", "title", "body", nil)
	assert.False(t, ok)
}

func TestInboxOwnership(t *testing.T) {
	t.Parallel()

	repo := &memoryNotificationRepo{}
	svc := NewNotificationService(repo, stubUserRepo{}, nil)
	defer svc.Stop()

	n := &notification.Notification{UserID: "user-1", Type: notification.TypeAnnouncement, Title: "Libur"}
	require.NoError(t, repo.Create(context.Background(), n))

	assert.ErrorIs(t, svc.MarkAsRead(context.Background(), "user-2", n.ID), notification.ErrNotRecipient)
	assert.ErrorIs(t, svc.Delete(context.Background(), "user-2", n.ID), notification.ErrNotRecipient)

	require.NoError(t, svc.MarkAsRead(context.Background(), "user-1", n.ID))

	list, err := svc.List(context.Background(), "user-1", true, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, list.TotalCount, "read notifications drop out of the unread filter")

	require.NoError(t, svc.Delete(context.Background(), "user-1", n.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), "user-1", n.ID), notification.ErrNotificationNotFound)
}
