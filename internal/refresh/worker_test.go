package refresh

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pcarvalho/deskd/internal/bus"
	"github.com/pcarvalho/deskd/internal/cache"
	"github.com/pcarvalho/deskd/internal/rest"
	"github.com/pcarvalho/deskd/internal/store"
	"go.uber.org/zap"
)

type fakeSource struct {
	mu            sync.Mutex
	conversations []rest.Conversation
	messages      map[int64][]rest.Message
	convErr       error
}

func (f *fakeSource) ListConversations(context.Context) ([]rest.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.conversations, f.convErr
}

func (f *fakeSource) ListMessages(_ context.Context, conversationID int64) ([]rest.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.messages[conversationID], nil
}

func testDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSweepRefetchesConversations(t *testing.T) {
	db := testDB(t)
	src := &fakeSource{conversations: []rest.Conversation{
		{ID: 42, Subject: "Printer broken", Kind: "ticket", UnreadCount: 2, LastMessageAt: "2026-08-24T10:00:00Z", LastMessagePreview: "any update?"},
	}}
	b := bus.New()
	w := NewWorker(db, src, b, zap.NewNop())

	ch, unsub := b.Subscribe(bus.KindRefreshed, 10)
	defer unsub()

	if _, err := db.MarkStale(cache.ConversationsKey); err != nil {
		t.Fatal(err)
	}
	w.sweep(context.Background())

	c, err := db.GetConversation(42)
	if err != nil {
		t.Fatal(err)
	}
	if c == nil || c.Subject != "Printer broken" || c.UnreadCount != 2 {
		t.Errorf("conversation = %+v", c)
	}

	keys, _ := db.StaleKeys()
	if len(keys) != 0 {
		t.Errorf("stale keys = %v, want drained", keys)
	}

	select {
	case evt := <-ch:
		if evt.Payload.(string) != string(cache.ConversationsKey) {
			t.Errorf("refreshed key = %v", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for refreshed event")
	}
}

func TestSweepRefetchesMessages(t *testing.T) {
	db := testDB(t)
	src := &fakeSource{messages: map[int64][]rest.Message{
		42: {{ID: 7, ConversationID: 42, SenderID: 9, SenderName: "alice", Content: "hello", MessageType: "text", CreatedAt: "2026-08-24T10:00:00Z"}},
	}}
	w := NewWorker(db, src, nil, zap.NewNop())

	if _, err := db.MarkStale(cache.MessagesKey(42)); err != nil {
		t.Fatal(err)
	}
	w.sweep(context.Background())

	msgs, err := db.ListMessages(42, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].Content != "hello" || msgs[0].Status != store.StatusDelivered {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestSweepResolvesPendingSends(t *testing.T) {
	db := testDB(t)
	if err := db.QueuePendingSend(&store.PendingSend{ClientID: "c-1", ConversationID: 42, Content: "hello", MessageType: "text"}); err != nil {
		t.Fatal(err)
	}
	if err := db.InsertProvisional(&store.Message{ConversationID: 42, ClientID: "c-1", Content: "hello", MessageType: "text", CreatedAt: 1}); err != nil {
		t.Fatal(err)
	}

	src := &fakeSource{messages: map[int64][]rest.Message{
		42: {{ID: 7, ConversationID: 42, Content: "hello", MessageType: "text", CreatedAt: "2026-08-24T10:00:00Z"}},
	}}
	w := NewWorker(db, src, nil, zap.NewNop())

	if _, err := db.MarkStale(cache.MessagesKey(42)); err != nil {
		t.Fatal(err)
	}
	w.sweep(context.Background())

	msgs, _ := db.ListMessages(42, 0, 10)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1 (provisional superseded)", len(msgs))
	}
	if msgs[0].ServerID != 7 || !msgs[0].FromMe {
		t.Errorf("message = %+v, want confirmed from_me copy", msgs[0])
	}

	sends, _ := db.PendingSends(42)
	if len(sends) != 0 {
		t.Errorf("pending sends = %+v, want resolved", sends)
	}
}

func TestFailedRefetchKeepsKeyStale(t *testing.T) {
	db := testDB(t)
	src := &fakeSource{convErr: errors.New("server unavailable")}
	w := NewWorker(db, src, nil, zap.NewNop())

	if _, err := db.MarkStale(cache.ConversationsKey); err != nil {
		t.Fatal(err)
	}
	w.sweep(context.Background())

	keys, _ := db.StaleKeys()
	if len(keys) != 1 || keys[0] != cache.ConversationsKey {
		t.Errorf("stale keys = %v, want key retained for retry", keys)
	}

	// Once the server recovers, the next sweep drains it.
	src.mu.Lock()
	src.convErr = nil
	src.conversations = []rest.Conversation{{ID: 42, Subject: "Printer broken"}}
	src.mu.Unlock()

	w.sweep(context.Background())
	keys, _ = db.StaleKeys()
	if len(keys) != 0 {
		t.Errorf("stale keys = %v, want drained after recovery", keys)
	}
}

func TestPresenceKeyClearsWithoutFetch(t *testing.T) {
	db := testDB(t)
	b := bus.New()
	w := NewWorker(db, &fakeSource{}, b, zap.NewNop())

	ch, unsub := b.Subscribe(bus.KindRefreshed, 10)
	defer unsub()

	if _, err := db.MarkStale(cache.PresenceKey(42)); err != nil {
		t.Fatal(err)
	}
	w.sweep(context.Background())

	keys, _ := db.StaleKeys()
	if len(keys) != 0 {
		t.Errorf("stale keys = %v, want drained", keys)
	}
	select {
	case evt := <-ch:
		if evt.Payload.(string) != string(cache.PresenceKey(42)) {
			t.Errorf("refreshed key = %v", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for refreshed event")
	}
}

func TestStartStopLifecycle(t *testing.T) {
	db := testDB(t)
	src := &fakeSource{conversations: []rest.Conversation{{ID: 42, Subject: "Printer broken"}}}
	w := NewWorker(db, src, nil, zap.NewNop())

	if _, err := db.MarkStale(cache.ConversationsKey); err != nil {
		t.Fatal(err)
	}

	w.Start(context.Background())
	defer w.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		keys, _ := db.StaleKeys()
		if len(keys) == 0 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("worker never drained the stale key")
}
