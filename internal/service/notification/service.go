package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peoplehr/hrms-backend-go/internal/domain/notification"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/clock"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/sse"
)

// Config tunes the async dispatch pipeline.
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type service struct {
	repo   notification.Repository
	hub    *sse.Hub
	clock  clock.Clock
	logger *slog.Logger
	config Config

	queue  chan notification.Event
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewService starts the background dispatch workers. Callers must Stop() the
// service on shutdown so the final partial batch is flushed.
func NewService(repo notification.Repository, hub *sse.Hub, clk clock.Clock, logger *slog.Logger, cfg Config) notification.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:   repo,
		hub:    hub,
		clock:  clk,
		logger: logger,
		config: cfg,
		queue:  make(chan notification.Event, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	logger.Info("notification dispatcher started",
		"workers", cfg.WorkerCount,
		"batch_size", cfg.BatchSize,
		"flush_interval", cfg.FlushInterval,
	)

	return s
}

// worker drains the queue into batched inserts, flushing on size or on the
// ticker, whichever comes first.
func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]notification.Event, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		notifications := make([]*notification.Notification, len(batch))
		for i, event := range batch {
			notifications[i] = s.toNotification(event)
		}

		if err := s.repo.CreateBatch(ctx, notifications); err != nil {
			s.logger.Error("failed to batch insert notifications", "worker", id, "count", len(notifications), "error", err)
		} else {
			for _, n := range notifications {
				s.hub.Publish(n.RecipientID, sse.Event{
					Name: "notification",
					Data: toResponse(n),
				})
			}
		}

		batch = batch[:0]
	}

	for {
		select {
		case event := <-s.queue:
			batch = append(batch, event)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			flush()
			return
		}
	}
}

// Queue implements notification.Dispatcher. Falls back to a direct insert
// when the queue is full rather than dropping the event.
func (s *service) Queue(ctx context.Context, event notification.Event) error {
	select {
	case s.queue <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return s.directInsert(ctx, event)
	}
}

// QueueBulk implements notification.Dispatcher.
func (s *service) QueueBulk(ctx context.Context, events []notification.Event) error {
	for _, event := range events {
		if err := s.Queue(ctx, event); err != nil {
			s.logger.Warn("failed to queue notification", "recipient_id", event.RecipientID, "error", err)
		}
	}
	return nil
}

func (s *service) directInsert(ctx context.Context, event notification.Event) error {
	n := s.toNotification(event)

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.hub.Publish(n.RecipientID, sse.Event{
		Name: "notification",
		Data: toResponse(n),
	})

	return nil
}

func (s *service) toNotification(event notification.Event) *notification.Notification {
	return &notification.Notification{
		ID:          uuid.New().String(),
		RecipientID: event.RecipientID,
		SenderID:    event.SenderID,
		Type:        event.Type,
		Title:       event.Title,
		Message:     event.Message,
		Link:        event.Link,
		IsRead:      false,
		CreatedAt:   s.clock.Now(),
	}
}

func toResponse(n *notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// GetNotifications implements notification.Service.
func (s *service) GetNotifications(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) (*notification.ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	notifications, total, err := s.repo.GetByUserID(ctx, userID, page, pageSize, unreadOnly)
	if err != nil {
		return nil, err
	}

	unreadCount, err := s.repo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = toResponse(n)
	}

	return &notification.ListResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unreadCount,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// GetUnreadCount implements notification.Service.
func (s *service) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead implements notification.Service.
func (s *service) MarkAsRead(ctx context.Context, userID string, req notification.MarkAsReadRequest) error {
	return s.repo.MarkAsRead(ctx, req.NotificationIDs, userID)
}

// MarkAllAsRead implements notification.Service.
func (s *service) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

// Subscribe implements notification.Service.
func (s *service) Subscribe(ctx context.Context, userID string) (<-chan notification.SSEEvent, func()) {
	ch, cancel := s.hub.Subscribe(userID)

	out := make(chan notification.SSEEvent, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				if resp, ok := event.Data.(notification.NotificationResponse); ok {
					// The send must stay cancellable: with a full buffer and
					// a gone consumer a bare send would pin this goroutine.
					select {
					case out <- notification.SSEEvent{Event: event.Name, Data: resp}:
					case <-ctx.Done():
						return
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cancel
}

// Stop drains the workers and flushes any buffered events.
func (s *service) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	s.logger.Info("notification dispatcher stopped")
}
