// Package refresh drains stale cache keys by refetching authoritative
// state over REST and writing it back into the local cache.
package refresh

import (
	"context"
	"time"

	"github.com/pcarvalho/deskd/internal/bus"
	"github.com/pcarvalho/deskd/internal/cache"
	"github.com/pcarvalho/deskd/internal/rest"
	"github.com/pcarvalho/deskd/internal/store"
	"go.uber.org/zap"
)

// Source is the authoritative read API the worker refetches from.
type Source interface {
	ListConversations(ctx context.Context) ([]rest.Conversation, error)
	ListMessages(ctx context.Context, conversationID int64) ([]rest.Message, error)
}

// Worker polls for stale cache keys and refetches them. One sweep
// handles every key currently stale; a key that fails stays stale and
// is retried on the next sweep.
type Worker struct {
	db     *store.DB
	source Source
	bus    *bus.Bus
	logger *zap.Logger
	cancel context.CancelFunc
}

// NewWorker creates a refresh worker.
func NewWorker(db *store.DB, source Source, b *bus.Bus, logger *zap.Logger) *Worker {
	return &Worker{
		db:     db,
		source: source,
		bus:    b,
		logger: logger,
	}
}

// Start begins polling for stale keys.
func (w *Worker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	go w.loop(ctx)
}

// Stop stops the worker loop.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Worker) loop(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) sweep(ctx context.Context) {
	keys, err := w.db.StaleKeys()
	if err != nil {
		w.logger.Error("failed to read stale keys", zap.Error(err))
		return
	}

	for _, key := range keys {
		if ctx.Err() != nil {
			return
		}
		if err := w.refetch(ctx, key); err != nil {
			w.logger.Error("refetch failed", zap.Error(err), zap.String("key", string(key)))
			continue
		}
		if err := w.db.ClearStale(key); err != nil {
			w.logger.Error("failed to clear stale key", zap.Error(err), zap.String("key", string(key)))
			continue
		}
		if w.bus != nil {
			w.bus.Emit(bus.KindRefreshed, string(key))
		}
	}
}

func (w *Worker) refetch(ctx context.Context, key cache.Key) error {
	kind, conversationID := key.Split()
	switch kind {
	case "conversations":
		return w.refetchConversations(ctx)
	case "messages":
		return w.refetchMessages(ctx, conversationID)
	default:
		// Presence has no cached rows to rewrite; clearing the key and
		// announcing the refresh is the whole effect.
		return nil
	}
}

func (w *Worker) refetchConversations(ctx context.Context) error {
	convs, err := w.source.ListConversations(ctx)
	if err != nil {
		return err
	}
	for _, c := range convs {
		if err := w.db.UpsertConversation(&store.Conversation{
			ID:                 c.ID,
			Subject:            c.Subject,
			Kind:               c.Kind,
			UnreadCount:        c.UnreadCount,
			LastMessageAt:      parseTimestamp(c.LastMessageAt),
			LastMessagePreview: c.LastMessagePreview,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) refetchMessages(ctx context.Context, conversationID int64) error {
	msgs, err := w.source.ListMessages(ctx, conversationID)
	if err != nil {
		return err
	}
	for _, m := range msgs {
		stored := &store.Message{
			ConversationID: conversationID,
			ServerID:       m.ID,
			SenderID:       m.SenderID,
			SenderName:     m.SenderName,
			Content:        m.Content,
			MessageType:    m.MessageType,
			ReplyToID:      m.ReplyToID,
			Edited:         m.Edited,
			Deleted:        m.Deleted,
			Status:         store.StatusDelivered,
			CreatedAt:      parseTimestamp(m.CreatedAt),
		}

		// A refetch can race the push stream and deliver the confirmed
		// copy of one of our own sends first. Resolve pending sends here
		// the same way the push path does.
		pending, err := w.db.OldestPendingSend(conversationID, m.Content)
		if err != nil {
			return err
		}
		if pending != nil {
			stored.FromMe = true
			if err := w.db.ConfirmPendingSend(pending.ClientID, m.ID); err != nil {
				return err
			}
			if err := w.db.DeleteProvisional(pending.ClientID); err != nil {
				return err
			}
		}

		if err := w.db.UpsertMessage(stored); err != nil {
			return err
		}
	}
	return nil
}

func parseTimestamp(s string) int64 {
	if s == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}
