// Package subs tracks which conversations the client wants live
// updates for. The server scopes subscriptions to a single connection,
// so the registry re-asserts the whole set after every reconnect.
package subs

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pcarvalho/deskd/internal/envelope"
	"go.uber.org/zap"
)

// IntentSender transmits encoded intents when the channel is open.
type IntentSender interface {
	Send(ctx context.Context, data []byte) error
	IsOpen() bool
}

// Registry is the owner of the subscription set. All mutations go
// through its methods; Snapshot is the only read and returns a copy.
type Registry struct {
	mu     sync.Mutex
	ids    map[int64]struct{}
	sender IntentSender
	logger *zap.Logger
}

// NewRegistry creates an empty registry bound to a sender.
func NewRegistry(sender IntentSender, logger *zap.Logger) *Registry {
	return &Registry{
		ids:    make(map[int64]struct{}),
		sender: sender,
		logger: logger,
	}
}

// Subscribe adds a conversation to the tracked set and, if the channel
// is open, emits a subscribe intent. Subscribing twice is a no-op: the
// set does not grow and no duplicate intent is sent.
func (r *Registry) Subscribe(ctx context.Context, conversationID int64) error {
	r.mu.Lock()
	_, exists := r.ids[conversationID]
	if !exists {
		r.ids[conversationID] = struct{}{}
	}
	r.mu.Unlock()

	if exists || !r.sender.IsOpen() {
		return nil
	}
	return r.emitSubscribe(ctx, conversationID)
}

// Unsubscribe removes a conversation from the tracked set. The set
// shrinks even while disconnected so the id is not re-asserted later;
// the unsubscribe intent is only sent on an open channel.
func (r *Registry) Unsubscribe(ctx context.Context, conversationID int64) error {
	r.mu.Lock()
	_, exists := r.ids[conversationID]
	delete(r.ids, conversationID)
	r.mu.Unlock()

	if !exists || !r.sender.IsOpen() {
		return nil
	}
	data, err := envelope.EncodeUnsubscribe(conversationID)
	if err != nil {
		return fmt.Errorf("encode unsubscribe: %w", err)
	}
	if err := r.sender.Send(ctx, data); err != nil {
		return fmt.Errorf("send unsubscribe: %w", err)
	}
	return nil
}

// OnReconnected re-emits one subscribe intent per tracked conversation.
// This is what makes subscriptions survive a dropped connection.
func (r *Registry) OnReconnected(ctx context.Context) {
	for _, id := range r.Snapshot() {
		if err := r.emitSubscribe(ctx, id); err != nil && r.logger != nil {
			r.logger.Warn("failed to re-assert subscription", zap.Error(err), zap.Int64("conversation_id", id))
		}
	}
}

// Snapshot returns the tracked conversation ids, sorted.
func (r *Registry) Snapshot() []int64 {
	r.mu.Lock()
	ids := make([]int64, 0, len(r.ids))
	for id := range r.ids {
		ids = append(ids, id)
	}
	r.mu.Unlock()
	slices.Sort(ids)
	return ids
}

func (r *Registry) emitSubscribe(ctx context.Context, conversationID int64) error {
	data, err := envelope.EncodeSubscribe(conversationID)
	if err != nil {
		return fmt.Errorf("encode subscribe: %w", err)
	}
	if err := r.sender.Send(ctx, data); err != nil {
		return fmt.Errorf("send subscribe: %w", err)
	}
	return nil
}
