package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kerjahub/roster-backend-go/internal/domain/notification"
	"github.com/kerjahub/roster-backend-go/internal/domain/user"
	"github.com/kerjahub/roster-backend-go/internal/pkg/fcm"
)

const (
	queueSize   = 256
	workerCount = 4

	// deliverTimeout bounds one persist-and-push cycle so a slow FCM call
	// cannot wedge a worker.
	deliverTimeout = 30 * time.Second
)

var errQueueClosed = errors.New("notification queue is closed")

type ServiceImpl struct {
	repo      notification.Repository
	users     user.UserRepository
	fcmClient *fcm.Client

	queue chan notification.QueueRequest
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// Queue implements notification.Service. The mutex orders enqueues against
// Stop so a late publisher gets errQueueClosed instead of a send on a
// closed channel.
func (s *ServiceImpl) Queue(_ context.Context, req notification.QueueRequest) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errQueueClosed
	}

	select {
	case s.queue <- req:
		return nil
	default:
		return fmt.Errorf("notification queue is full, dropping event for user %s", req.UserID)
	}
}

// worker drains the queue. Each event is persisted to the inbox first; the
// push is attempted only afterwards, so a dead FCM connection still leaves
// the in-app notification intact.
func (s *ServiceImpl) worker() {
	defer s.wg.Done()

	for req := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
		s.deliver(ctx, req)
		cancel()
	}
}

func (s *ServiceImpl) deliver(ctx context.Context, req notification.QueueRequest) {
	record := &notification.Notification{
		UserID: req.UserID,
		Type:   req.Type,
		Title:  req.Title,
		Body:   req.Body,
		Data:   req.Data,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		slog.Error("Failed to persist notification", "user_id", req.UserID, "type", req.Type, "error", err)
		return
	}

	if s.fcmClient == nil || !s.fcmClient.Enabled() {
		return
	}

	u, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		slog.Warn("Failed to load user for push delivery", "user_id", req.UserID, "error", err)
		return
	}
	if u.FCMToken == nil || *u.FCMToken == "" {
		return
	}

	data := map[string]string{"notification_id": record.ID, "type": string(req.Type)}
	if err := s.fcmClient.Send(ctx, *u.FCMToken, req.Title, req.Body, data); err != nil {
		slog.Warn("Failed to send push notification", "user_id", req.UserID, "type", req.Type, "error", err)
	}
}

// SendTransient implements notification.Service.
func (s *ServiceImpl) SendTransient(ctx context.Context, fcmToken string, title, body string, data map[string]string) bool {
	if s.fcmClient == nil || !s.fcmClient.Enabled() {
		return false
	}

	if err := s.fcmClient.Send(ctx, fcmToken, title, body, data); err != nil {
		slog.Warn("Failed to send transient push", "error", err)
		return false
	}

	return true
}

// List implements notification.Service.
func (s *ServiceImpl) List(ctx context.Context, userID string, unreadOnly bool, limit, offset int) (notification.ListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	items, total, err := s.repo.ListByUser(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return notification.ListResponse{}, err
	}

	resp := notification.ListResponse{
		TotalCount:    total,
		Notifications: make([]notification.NotificationResponse, 0, len(items)),
	}
	for _, n := range items {
		resp.Notifications = append(resp.Notifications, notification.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Body:      n.Body,
			Data:      n.Data,
			IsRead:    n.IsRead,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}

	return resp, nil
}

// MarkAsRead implements notification.Service.
func (s *ServiceImpl) MarkAsRead(ctx context.Context, userID string, id string) error {
	return s.repo.MarkAsRead(ctx, userID, id)
}

// Delete implements notification.Service.
func (s *ServiceImpl) Delete(ctx context.Context, userID string, id string) error {
	return s.repo.DeleteOwn(ctx, userID, id)
}

// Stop implements notification.Service. Already-queued events are still
// delivered; safe to call more than once.
func (s *ServiceImpl) Stop() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func NewNotificationService(
	repo notification.Repository,
	users user.UserRepository,
	fcmClient *fcm.Client,
) notification.Service {
	s := &ServiceImpl{
		repo:      repo,
		users:     users,
		fcmClient: fcmClient,
		queue:     make(chan notification.QueueRequest, queueSize),
	}

	s.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go s.worker()
	}

	return s
}
