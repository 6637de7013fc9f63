// Package reconcile turns decoded envelopes into local cache effects.
// Every handler is idempotent and fire-and-forget: replays and
// out-of-order delivery are harmless because the next refetch re-reads
// authoritative state.
package reconcile

import (
	"fmt"
	"time"

	"github.com/pcarvalho/deskd/internal/bus"
	"github.com/pcarvalho/deskd/internal/cache"
	"github.com/pcarvalho/deskd/internal/envelope"
	"github.com/pcarvalho/deskd/internal/store"
	"go.uber.org/zap"
)

// Bridge is the reconciliation layer between the envelope stream and
// the local cache. It holds exactly one handler per envelope kind.
type Bridge struct {
	db     *store.DB
	inv    cache.Invalidator
	bus    *bus.Bus
	logger *zap.Logger
}

// NewBridge creates a bridge.
func NewBridge(db *store.DB, inv cache.Invalidator, b *bus.Bus, logger *zap.Logger) *Bridge {
	return &Bridge{db: db, inv: inv, bus: b, logger: logger}
}

// Handle dispatches one envelope to its kind's handler. Typing is owned
// by the presence aggregator and ignored here.
func (b *Bridge) Handle(env *envelope.Envelope) {
	switch env.Kind {
	case envelope.KindNewMessage:
		b.handleNewMessage(env)
	case envelope.KindMessageRead:
		b.inv.Invalidate(cache.MessagesKey(env.ConversationID))
	case envelope.KindReaction:
		b.inv.Invalidate(cache.MessagesKey(env.ConversationID))
	case envelope.KindMessageEdited:
		b.handleMessageEdited(env)
	case envelope.KindMessageDeleted:
		b.handleMessageDeleted(env)
	case envelope.KindOnlineStatus:
		// Presence affects the summary list (participant status badges),
		// never individual message lists.
		b.inv.Invalidate(cache.ConversationsKey)
	case envelope.KindSubscribed, envelope.KindUnsubscribed:
		// Acknowledgements; diagnostics only.
		if b.logger != nil {
			b.logger.Debug("subscription acknowledged",
				zap.String("kind", string(env.Kind)),
				zap.Int64("conversation_id", env.ConversationID))
		}
	}
}

func (b *Bridge) handleNewMessage(env *envelope.Envelope) {
	msg := env.Message
	if msg == nil {
		return
	}

	stored := &store.Message{
		ConversationID: env.ConversationID,
		ServerID:       msg.ID,
		SenderID:       msg.SenderID,
		SenderName:     msg.SenderName,
		Content:        msg.Content,
		MessageType:    msg.MessageType,
		ReplyToID:      msg.ReplyToID,
		Edited:         msg.Edited,
		Deleted:        msg.Deleted,
		Status:         store.StatusDelivered,
		CreatedAt:      parseTimestamp(msg.CreatedAt),
	}

	// The wire carries no client id, so the authoritative copy of one
	// of our own sends is matched to the oldest pending send with the
	// same content in this conversation.
	pending, err := b.db.OldestPendingSend(env.ConversationID, msg.Content)
	if err != nil {
		b.logError("match pending send", err, env)
	} else if pending != nil {
		stored.FromMe = true
		if err := b.db.ConfirmPendingSend(pending.ClientID, msg.ID); err != nil {
			b.logError("confirm pending send", err, env)
		}
		if err := b.db.DeleteProvisional(pending.ClientID); err != nil {
			b.logError("supersede provisional", err, env)
		}
		if b.bus != nil {
			b.bus.Emit(bus.KindSendConfirmed, SendResult{
				ClientID:       pending.ClientID,
				ConversationID: env.ConversationID,
				ServerID:       msg.ID,
			})
		}
	}

	if err := b.db.UpsertMessage(stored); err != nil {
		b.logError("upsert message", err, env)
	}
	if err := b.db.TouchConversation(env.ConversationID, stored.CreatedAt, truncate(msg.Content, 100)); err != nil {
		b.logError("touch conversation", err, env)
	}

	b.inv.Invalidate(cache.MessagesKey(env.ConversationID))
	b.inv.Invalidate(cache.ConversationsKey)
}

func (b *Bridge) handleMessageEdited(env *envelope.Envelope) {
	if msg := env.Message; msg != nil {
		if err := b.db.MarkMessageEdited(env.ConversationID, msg.ID, msg.Content); err != nil {
			b.logError("mark message edited", err, env)
		}
	}
	b.inv.Invalidate(cache.MessagesKey(env.ConversationID))
}

func (b *Bridge) handleMessageDeleted(env *envelope.Envelope) {
	if err := b.db.MarkMessageDeleted(env.ConversationID, env.MessageID); err != nil {
		b.logError("mark message deleted", err, env)
	}
	b.inv.Invalidate(cache.MessagesKey(env.ConversationID))
}

// OptimisticInsert records a client-initiated send before the server
// confirms it: a pending-send row plus a clearly-marked provisional
// message the UI shows immediately.
func (b *Bridge) OptimisticInsert(clientID string, conversationID int64, content, messageType string, replyToID int64) error {
	now := time.Now().UnixMilli()
	if err := b.db.QueuePendingSend(&store.PendingSend{
		ClientID:       clientID,
		ConversationID: conversationID,
		Content:        content,
		MessageType:    messageType,
		ReplyToID:      replyToID,
	}); err != nil {
		return fmt.Errorf("queue pending send: %w", err)
	}
	if err := b.db.InsertProvisional(&store.Message{
		ConversationID: conversationID,
		ClientID:       clientID,
		Content:        content,
		MessageType:    messageType,
		ReplyToID:      replyToID,
		CreatedAt:      now,
	}); err != nil {
		return fmt.Errorf("insert provisional message: %w", err)
	}
	if b.bus != nil {
		b.bus.Emit(bus.KindSendPending, SendResult{
			ClientID:       clientID,
			ConversationID: conversationID,
		})
	}
	return nil
}

// RollbackSend removes the optimistic state for a send whose transmit
// failed, keeping the pending-send row as a failed record for
// diagnostics and retry UIs.
func (b *Bridge) RollbackSend(clientID string, sendErr error) error {
	if err := b.db.FailPendingSend(clientID, sendErr.Error()); err != nil {
		return fmt.Errorf("fail pending send: %w", err)
	}
	if err := b.db.DeleteProvisional(clientID); err != nil {
		return fmt.Errorf("delete provisional message: %w", err)
	}
	if b.bus != nil {
		b.bus.Emit(bus.KindSendFailed, SendResult{
			ClientID: clientID,
			Error:    sendErr.Error(),
		})
	}
	return nil
}

// SendResult is the payload for message send lifecycle events.
type SendResult struct {
	ClientID       string
	ConversationID int64
	ServerID       int64
	Error          string
}

func (b *Bridge) logError(op string, err error, env *envelope.Envelope) {
	if b.logger != nil {
		b.logger.Error("reconciliation failed",
			zap.String("op", op),
			zap.Error(err),
			zap.String("kind", string(env.Kind)),
			zap.Int64("conversation_id", env.ConversationID))
	}
}

func parseTimestamp(s string) int64 {
	if s == "" {
		return time.Now().UnixMilli()
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now().UnixMilli()
	}
	return t.UnixMilli()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
