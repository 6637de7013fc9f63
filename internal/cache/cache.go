// Package cache defines the key-addressed invalidation contract the
// reconciliation bridge depends on. Any key-addressed cache satisfies
// Invalidator; the SQLite-backed implementation lives in internal/store.
package cache

import (
	"fmt"
	"strconv"
	"strings"
)

// Key addresses one cached query result.
type Key string

// ConversationsKey is the conversation summary list (last-message
// previews and unread counters).
const ConversationsKey Key = "conversations"

// MessagesKey returns the key for one conversation's message list.
func MessagesKey(conversationID int64) Key {
	return Key(fmt.Sprintf("messages:%d", conversationID))
}

// PresenceKey returns the key for one conversation's participant
// presence.
func PresenceKey(conversationID int64) Key {
	return Key(fmt.Sprintf("presence:%d", conversationID))
}

// Split breaks a key into its kind ("conversations", "messages",
// "presence") and conversation id (0 when the key is not scoped to one).
func (k Key) Split() (kind string, conversationID int64) {
	s := string(k)
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return s, 0
	}
	id, _ := strconv.ParseInt(s[i+1:], 10, 64)
	return s[:i], id
}

// Invalidator marks cached query results stale so consumers refetch
// them. Invalidate must be idempotent and fire-and-forget: invalidating
// an already-stale key is a no-op, and callers never wait on the
// refetch.
type Invalidator interface {
	Invalidate(key Key)
}
