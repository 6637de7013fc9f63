package reconcile

import (
	"errors"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/pcarvalho/deskd/internal/bus"
	"github.com/pcarvalho/deskd/internal/cache"
	"github.com/pcarvalho/deskd/internal/envelope"
	"github.com/pcarvalho/deskd/internal/store"
)

type recordingInvalidator struct {
	mu   sync.Mutex
	keys []cache.Key
}

func (r *recordingInvalidator) Invalidate(key cache.Key) {
	r.mu.Lock()
	r.keys = append(r.keys, key)
	r.mu.Unlock()
}

func (r *recordingInvalidator) snapshot() []cache.Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.keys)
}

func testDB(t *testing.T) *store.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newMessageEnv(conv, id int64, content string) *envelope.Envelope {
	return &envelope.Envelope{
		Kind:           envelope.KindNewMessage,
		ConversationID: conv,
		Message: &envelope.Message{
			ID:             id,
			ConversationID: conv,
			SenderID:       9,
			SenderName:     "alice",
			Content:        content,
			MessageType:    "text",
			CreatedAt:      "2026-08-24T10:00:00Z",
		},
	}
}

func TestNewMessageInvalidatesBothKeys(t *testing.T) {
	db := testDB(t)
	inv := &recordingInvalidator{}
	b := NewBridge(db, inv, nil, nil)

	b.Handle(newMessageEnv(42, 7, "hello"))

	want := []cache.Key{cache.MessagesKey(42), cache.ConversationsKey}
	if got := inv.snapshot(); !slices.Equal(got, want) {
		t.Errorf("invalidated keys = %v, want %v", got, want)
	}

	// The authoritative message landed in the cache.
	m, err := db.GetMessageByServerID(42, 7)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil || m.Content != "hello" || m.Status != store.StatusDelivered {
		t.Errorf("message = %+v", m)
	}

	// The summary pointer advanced.
	c, _ := db.GetConversation(42)
	if c == nil || c.LastMessagePreview != "hello" {
		t.Errorf("conversation = %+v", c)
	}
}

func TestDuplicateNewMessageIsIdempotent(t *testing.T) {
	db := testDB(t)
	inv := &recordingInvalidator{}
	b := NewBridge(db, inv, nil, nil)

	env := newMessageEnv(42, 7, "hello")
	b.Handle(env)
	b.Handle(env)

	msgs, _ := db.ListMessages(42, 0, 10)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1 (idempotent)", len(msgs))
	}

	// Per-key invalidations repeat but are deduplicable: both deliveries
	// produced the same key sequence.
	want := []cache.Key{
		cache.MessagesKey(42), cache.ConversationsKey,
		cache.MessagesKey(42), cache.ConversationsKey,
	}
	if got := inv.snapshot(); !slices.Equal(got, want) {
		t.Errorf("invalidated keys = %v, want %v", got, want)
	}
}

func TestMessageScopedKindsTouchOnlyMessageList(t *testing.T) {
	db := testDB(t)

	tests := []struct {
		name string
		env  *envelope.Envelope
	}{
		{"message_read", &envelope.Envelope{Kind: envelope.KindMessageRead, ConversationID: 42, MessageID: 7, UserID: 9}},
		{"reaction", &envelope.Envelope{Kind: envelope.KindReaction, ConversationID: 42, MessageID: 7, Emoji: "👍", Action: envelope.ActionAdd}},
		{"message_edited", &envelope.Envelope{Kind: envelope.KindMessageEdited, ConversationID: 42, Message: &envelope.Message{ID: 7, Content: "fixed"}}},
		{"message_deleted", &envelope.Envelope{Kind: envelope.KindMessageDeleted, ConversationID: 42, MessageID: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &recordingInvalidator{}
			b := NewBridge(db, inv, nil, nil)

			b.Handle(tt.env)

			want := []cache.Key{cache.MessagesKey(42)}
			if got := inv.snapshot(); !slices.Equal(got, want) {
				t.Errorf("invalidated keys = %v, want %v (never the summary list)", got, want)
			}
		})
	}
}

func TestOnlineStatusTouchesOnlySummaryList(t *testing.T) {
	db := testDB(t)
	inv := &recordingInvalidator{}
	b := NewBridge(db, inv, nil, nil)

	b.Handle(&envelope.Envelope{Kind: envelope.KindOnlineStatus, ConversationID: 42, UserID: 9, IsOnline: true})

	want := []cache.Key{cache.ConversationsKey}
	if got := inv.snapshot(); !slices.Equal(got, want) {
		t.Errorf("invalidated keys = %v, want %v", got, want)
	}
}

func TestSubscriptionAcksHaveNoCacheEffect(t *testing.T) {
	db := testDB(t)
	inv := &recordingInvalidator{}
	b := NewBridge(db, inv, nil, nil)

	b.Handle(&envelope.Envelope{Kind: envelope.KindSubscribed, ConversationID: 42})
	b.Handle(&envelope.Envelope{Kind: envelope.KindUnsubscribed, ConversationID: 42})

	if got := inv.snapshot(); len(got) != 0 {
		t.Errorf("invalidated keys = %v, want none", got)
	}
}

func TestEditAppliesToStore(t *testing.T) {
	db := testDB(t)
	b := NewBridge(db, &recordingInvalidator{}, nil, nil)

	b.Handle(newMessageEnv(42, 7, "tpyo"))
	b.Handle(&envelope.Envelope{
		Kind:           envelope.KindMessageEdited,
		ConversationID: 42,
		Message:        &envelope.Message{ID: 7, Content: "typo", Edited: true},
	})

	m, _ := db.GetMessageByServerID(42, 7)
	if m.Content != "typo" || !m.Edited {
		t.Errorf("message = %+v, want edited content", m)
	}
}

func TestDeleteRedactsButRetains(t *testing.T) {
	db := testDB(t)
	b := NewBridge(db, &recordingInvalidator{}, nil, nil)

	b.Handle(newMessageEnv(42, 7, "secret"))
	b.Handle(&envelope.Envelope{Kind: envelope.KindMessageDeleted, ConversationID: 42, MessageID: 7})

	m, _ := db.GetMessageByServerID(42, 7)
	if m == nil {
		t.Fatal("deleted message must remain in the client view")
	}
	if !m.Deleted || m.Content != "" {
		t.Errorf("message = %+v, want soft-deleted", m)
	}
}

func TestOptimisticSendConfirmedByInboundMessage(t *testing.T) {
	db := testDB(t)
	b := bus.New()
	bridge := NewBridge(db, &recordingInvalidator{}, b, nil)

	ch, unsub := b.Subscribe(bus.KindSendConfirmed, 10)
	defer unsub()

	if err := bridge.OptimisticInsert("c-1", 42, "hello", "text", 0); err != nil {
		t.Fatal(err)
	}

	msgs, _ := db.ListMessages(42, 0, 10)
	if len(msgs) != 1 || msgs[0].Status != store.StatusPending {
		t.Fatalf("messages = %+v, want one pending provisional", msgs)
	}

	// The authoritative copy arrives and supersedes the provisional row.
	bridge.Handle(newMessageEnv(42, 7, "hello"))

	msgs, _ = db.ListMessages(42, 0, 10)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1 (provisional superseded)", len(msgs))
	}
	if msgs[0].ServerID != 7 || msgs[0].Status != store.StatusDelivered || !msgs[0].FromMe {
		t.Errorf("message = %+v, want delivered from_me server_id=7", msgs[0])
	}

	select {
	case evt := <-ch:
		res := evt.Payload.(SendResult)
		if res.ClientID != "c-1" || res.ServerID != 7 {
			t.Errorf("send result = %+v", res)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for send_confirmed event")
	}

	// No pending sends remain.
	sends, _ := db.PendingSends(0)
	if len(sends) != 0 {
		t.Errorf("pending sends = %+v, want none", sends)
	}
}

func TestRollbackSendRemovesProvisional(t *testing.T) {
	db := testDB(t)
	b := bus.New()
	bridge := NewBridge(db, &recordingInvalidator{}, b, nil)

	ch, unsub := b.Subscribe(bus.KindSendFailed, 10)
	defer unsub()

	if err := bridge.OptimisticInsert("c-1", 42, "hello", "text", 0); err != nil {
		t.Fatal(err)
	}
	if err := bridge.RollbackSend("c-1", errors.New("transport closed")); err != nil {
		t.Fatal(err)
	}

	msgs, _ := db.ListMessages(42, 0, 10)
	if len(msgs) != 0 {
		t.Errorf("messages = %+v, want provisional removed", msgs)
	}

	select {
	case evt := <-ch:
		res := evt.Payload.(SendResult)
		if res.ClientID != "c-1" || res.Error == "" {
			t.Errorf("send result = %+v", res)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for send_failed event")
	}
}

func TestUnrelatedInboundDoesNotConsumePending(t *testing.T) {
	db := testDB(t)
	bridge := NewBridge(db, &recordingInvalidator{}, nil, nil)

	if err := bridge.OptimisticInsert("c-1", 42, "hello", "text", 0); err != nil {
		t.Fatal(err)
	}

	// Someone else's message with different content must not resolve
	// our pending send.
	bridge.Handle(newMessageEnv(42, 8, "unrelated"))

	sends, _ := db.PendingSends(42)
	if len(sends) != 1 || sends[0].ClientID != "c-1" {
		t.Errorf("pending sends = %+v, want c-1 still pending", sends)
	}
	msgs, _ := db.ListMessages(42, 0, 10)
	if len(msgs) != 2 {
		t.Errorf("got %d messages, want provisional plus authoritative", len(msgs))
	}
}
