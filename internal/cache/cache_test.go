package cache

import "testing"

func TestKeySplit(t *testing.T) {
	tests := []struct {
		key      Key
		wantKind string
		wantID   int64
	}{
		{ConversationsKey, "conversations", 0},
		{MessagesKey(42), "messages", 42},
		{PresenceKey(7), "presence", 7},
	}
	for _, tt := range tests {
		kind, id := tt.key.Split()
		if kind != tt.wantKind || id != tt.wantID {
			t.Errorf("Split(%q) = (%q, %d), want (%q, %d)", tt.key, kind, id, tt.wantKind, tt.wantID)
		}
	}
}
