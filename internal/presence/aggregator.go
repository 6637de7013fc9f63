// Package presence folds typing and online-status envelopes into
// ephemeral per-conversation state. Nothing here is persisted: a
// disconnect resets it, and durable presence truth lives in the cache.
package presence

import (
	"slices"
	"sync"
	"time"

	"github.com/pcarvalho/deskd/internal/bus"
	"github.com/pcarvalho/deskd/internal/cache"
	"github.com/pcarvalho/deskd/internal/envelope"
	"go.uber.org/zap"
)

// DefaultTypingTTL guards against a lost "stopped typing" event leaving
// a stale indicator forever.
const DefaultTypingTTL = 5 * time.Second

type pairKey struct {
	conversationID int64
	userID         int64
}

// Aggregator owns the typing map. It is mutated only by typing
// envelopes and expiry timers; reads are snapshots.
type Aggregator struct {
	mu     sync.Mutex
	ttl    time.Duration
	typing map[pairKey]*time.Timer
	inv    cache.Invalidator
	bus    *bus.Bus
	logger *zap.Logger
}

// NewAggregator creates an aggregator. ttl <= 0 selects the default.
func NewAggregator(ttl time.Duration, inv cache.Invalidator, b *bus.Bus, logger *zap.Logger) *Aggregator {
	if ttl <= 0 {
		ttl = DefaultTypingTTL
	}
	return &Aggregator{
		ttl:    ttl,
		typing: make(map[pairKey]*time.Timer),
		inv:    inv,
		bus:    b,
		logger: logger,
	}
}

// Handle consumes a typing or online_status envelope. Other kinds are
// ignored.
func (a *Aggregator) Handle(env *envelope.Envelope) {
	switch env.Kind {
	case envelope.KindTyping:
		a.handleTyping(env.ConversationID, env.UserID, env.IsTyping)
	case envelope.KindOnlineStatus:
		// Presence truth lives in the cache; forward the signal so the
		// participant list is refetched.
		if a.inv != nil {
			a.inv.Invalidate(cache.PresenceKey(env.ConversationID))
		}
	}
}

func (a *Aggregator) handleTyping(conversationID, userID int64, isTyping bool) {
	key := pairKey{conversationID, userID}

	a.mu.Lock()
	if timer, ok := a.typing[key]; ok {
		timer.Stop()
		delete(a.typing, key)
	}
	if isTyping {
		// Every fresh typing=true restarts the pair's expiry window.
		a.typing[key] = time.AfterFunc(a.ttl, func() { a.expire(key) })
	}
	a.mu.Unlock()

	a.notify(conversationID)
}

func (a *Aggregator) expire(key pairKey) {
	a.mu.Lock()
	_, ok := a.typing[key]
	if ok {
		delete(a.typing, key)
	}
	a.mu.Unlock()

	if ok {
		if a.logger != nil {
			a.logger.Debug("typing indicator expired",
				zap.Int64("conversation_id", key.conversationID),
				zap.Int64("user_id", key.userID))
		}
		a.notify(key.conversationID)
	}
}

// TypingUsers returns a snapshot of the users currently typing in a
// conversation, sorted. Callers may mutate the returned slice freely.
func (a *Aggregator) TypingUsers(conversationID int64) []int64 {
	a.mu.Lock()
	var users []int64
	for key := range a.typing {
		if key.conversationID == conversationID {
			users = append(users, key.userID)
		}
	}
	a.mu.Unlock()
	slices.Sort(users)
	return users
}

// Reset cancels every expiry timer and clears the typing map. Called on
// disconnect: typing state never survives a dropped connection.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	for key, timer := range a.typing {
		timer.Stop()
		delete(a.typing, key)
	}
	a.mu.Unlock()
}

func (a *Aggregator) notify(conversationID int64) {
	if a.bus != nil {
		a.bus.Emit(bus.KindTypingChanged, TypingChange{
			ConversationID: conversationID,
			UserIDs:        a.TypingUsers(conversationID),
		})
	}
}

// TypingChange is the payload for typing change events.
type TypingChange struct {
	ConversationID int64
	UserIDs        []int64
}
