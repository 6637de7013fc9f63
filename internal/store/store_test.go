package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pcarvalho/deskd/internal/bus"
	"github.com/pcarvalho/deskd/internal/cache"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUpsertConversationIdempotent(t *testing.T) {
	db := testDB(t)

	c := &Conversation{ID: 1, Subject: "printer down", LastMessageAt: 1000, LastMessagePreview: "hi", UnreadCount: 2}
	if err := db.UpsertConversation(c); err != nil {
		t.Fatal(err)
	}
	if err := db.UpsertConversation(c); err != nil {
		t.Fatal(err)
	}

	convs, err := db.ListConversations(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(convs) != 1 {
		t.Fatalf("got %d conversations, want 1", len(convs))
	}
	if convs[0].Subject != "printer down" || convs[0].UnreadCount != 2 {
		t.Errorf("conversation = %+v", convs[0])
	}
}

func TestUpsertConversationKeepsNewestPointer(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertConversation(&Conversation{ID: 1, LastMessageAt: 2000, LastMessagePreview: "newer"}); err != nil {
		t.Fatal(err)
	}
	// An out-of-order older update must not move the pointer backwards.
	if err := db.UpsertConversation(&Conversation{ID: 1, LastMessageAt: 1000, LastMessagePreview: "older"}); err != nil {
		t.Fatal(err)
	}

	c, err := db.GetConversation(1)
	if err != nil {
		t.Fatal(err)
	}
	if c.LastMessageAt != 2000 || c.LastMessagePreview != "newer" {
		t.Errorf("conversation = %+v, want last_message_at=2000 preview=newer", c)
	}
}

func TestUpsertMessageIdempotent(t *testing.T) {
	db := testDB(t)

	m := &Message{ConversationID: 1, ServerID: 7, Content: "v1", MessageType: "text", Status: StatusDelivered, CreatedAt: 1000}
	if err := db.UpsertMessage(m); err != nil {
		t.Fatal(err)
	}
	m.Content = "v2"
	m.Edited = true
	if err := db.UpsertMessage(m); err != nil {
		t.Fatal(err)
	}

	msgs, err := db.ListMessages(1, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Content != "v2" || !msgs[0].Edited {
		t.Errorf("message = %+v, want content=v2 edited", msgs[0])
	}
}

func TestSoftDelete(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertMessage(&Message{ConversationID: 1, ServerID: 7, Content: "secret", MessageType: "text", Status: StatusDelivered, CreatedAt: 1000}); err != nil {
		t.Fatal(err)
	}
	if err := db.MarkMessageDeleted(1, 7); err != nil {
		t.Fatal(err)
	}

	m, err := db.GetMessageByServerID(1, 7)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil {
		t.Fatal("deleted message row must be retained")
	}
	if !m.Deleted || m.Content != "" {
		t.Errorf("message = %+v, want deleted with redacted content", m)
	}

	// A replayed refetch of the original content must not resurrect it.
	if err := db.UpsertMessage(&Message{ConversationID: 1, ServerID: 7, Content: "secret", MessageType: "text", Status: StatusDelivered, CreatedAt: 1000}); err != nil {
		t.Fatal(err)
	}
	m, _ = db.GetMessageByServerID(1, 7)
	if !m.Deleted || m.Content != "" {
		t.Errorf("message after replay = %+v, want still deleted", m)
	}
}

func TestMarkMessageEdited(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertMessage(&Message{ConversationID: 1, ServerID: 7, Content: "tpyo", MessageType: "text", Status: StatusDelivered, CreatedAt: 1000}); err != nil {
		t.Fatal(err)
	}
	if err := db.MarkMessageEdited(1, 7, "typo"); err != nil {
		t.Fatal(err)
	}

	m, _ := db.GetMessageByServerID(1, 7)
	if m.Content != "typo" || !m.Edited {
		t.Errorf("message = %+v, want content=typo edited", m)
	}
}

func TestProvisionalLifecycle(t *testing.T) {
	db := testDB(t)

	prov := &Message{ConversationID: 1, ClientID: "c-1", Content: "hello", MessageType: "text", CreatedAt: 1000}
	if err := db.InsertProvisional(prov); err != nil {
		t.Fatal(err)
	}

	msgs, _ := db.ListMessages(1, 0, 10)
	if len(msgs) != 1 || msgs[0].Status != StatusPending || msgs[0].ClientID != "c-1" {
		t.Fatalf("messages = %+v, want one pending provisional", msgs)
	}
	if !msgs[0].FromMe {
		t.Error("provisional message must be from_me")
	}

	if err := db.DeleteProvisional("c-1"); err != nil {
		t.Fatal(err)
	}
	msgs, _ = db.ListMessages(1, 0, 10)
	if len(msgs) != 0 {
		t.Errorf("got %d messages after delete, want 0", len(msgs))
	}
}

func TestPendingSendLifecycle(t *testing.T) {
	db := testDB(t)

	if err := db.QueuePendingSend(&PendingSend{ClientID: "c-1", ConversationID: 42, Content: "hello", MessageType: "text"}); err != nil {
		t.Fatal(err)
	}
	if err := db.QueuePendingSend(&PendingSend{ClientID: "c-2", ConversationID: 42, Content: "hello", MessageType: "text"}); err != nil {
		t.Fatal(err)
	}

	// Oldest pending with matching content is c-1.
	p, err := db.OldestPendingSend(42, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.ClientID != "c-1" {
		t.Fatalf("oldest pending = %+v, want c-1", p)
	}

	if err := db.ConfirmPendingSend("c-1", 99); err != nil {
		t.Fatal(err)
	}
	p, _ = db.OldestPendingSend(42, "hello")
	if p == nil || p.ClientID != "c-2" {
		t.Fatalf("oldest pending after confirm = %+v, want c-2", p)
	}

	if err := db.FailPendingSend("c-2", "transport closed"); err != nil {
		t.Fatal(err)
	}
	sends, _ := db.PendingSends(0)
	if len(sends) != 0 {
		t.Errorf("pending sends = %+v, want none", sends)
	}
}

func TestMarkStaleDeduplicates(t *testing.T) {
	db := testDB(t)

	changed, err := db.MarkStale(cache.MessagesKey(42))
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("first MarkStale should report a transition")
	}

	changed, err = db.MarkStale(cache.MessagesKey(42))
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("second MarkStale should be a no-op")
	}

	keys, err := db.StaleKeys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0] != cache.MessagesKey(42) {
		t.Errorf("stale keys = %v", keys)
	}

	if err := db.ClearStale(cache.MessagesKey(42)); err != nil {
		t.Fatal(err)
	}
	keys, _ = db.StaleKeys()
	if len(keys) != 0 {
		t.Errorf("stale keys after clear = %v", keys)
	}

	// Fresh-to-stale transitions again after clearing.
	changed, _ = db.MarkStale(cache.MessagesKey(42))
	if !changed {
		t.Error("MarkStale after clear should report a transition")
	}
}

func TestInvalidatorPublishesOnTransition(t *testing.T) {
	db := testDB(t)
	b := bus.New()
	inv := NewInvalidator(db, b, nil)

	ch, unsub := b.Subscribe("cache.", 10)
	defer unsub()

	inv.Invalidate(cache.ConversationsKey)
	inv.Invalidate(cache.ConversationsKey)

	select {
	case evt := <-ch:
		if evt.Kind != bus.KindInvalidated || evt.Payload != string(cache.ConversationsKey) {
			t.Errorf("event = %+v", evt)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for invalidation event")
	}

	// The duplicate must not produce a second event.
	select {
	case evt := <-ch:
		t.Errorf("unexpected second event: %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}
