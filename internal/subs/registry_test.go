package subs

import (
	"context"
	"encoding/json"
	"slices"
	"testing"
)

// mockSender records every intent, optionally pretending to be closed.
type mockSender struct {
	open   bool
	frames [][]byte
}

func (m *mockSender) Send(_ context.Context, data []byte) error {
	m.frames = append(m.frames, data)
	return nil
}

func (m *mockSender) IsOpen() bool { return m.open }

func decodeFrames(t *testing.T, frames [][]byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, f := range frames {
		var m map[string]any
		if err := json.Unmarshal(f, &m); err != nil {
			t.Fatal(err)
		}
		out = append(out, m)
	}
	return out
}

func TestSubscribeIdempotent(t *testing.T) {
	sender := &mockSender{open: true}
	r := NewRegistry(sender, nil)
	ctx := context.Background()

	if err := r.Subscribe(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := r.Subscribe(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := r.Subscribe(ctx, 2); err != nil {
		t.Fatal(err)
	}

	if got := r.Snapshot(); !slices.Equal(got, []int64{1, 2}) {
		t.Errorf("snapshot = %v, want [1 2]", got)
	}
	// Duplicate subscribe must not emit a duplicate intent.
	if len(sender.frames) != 2 {
		t.Errorf("sent %d intents, want 2", len(sender.frames))
	}
}

func TestSubscribeWhileClosedSendsNothing(t *testing.T) {
	sender := &mockSender{open: false}
	r := NewRegistry(sender, nil)

	if err := r.Subscribe(context.Background(), 1); err != nil {
		t.Fatal(err)
	}

	if got := r.Snapshot(); !slices.Equal(got, []int64{1}) {
		t.Errorf("snapshot = %v, want [1]", got)
	}
	if len(sender.frames) != 0 {
		t.Errorf("sent %d intents while closed, want 0", len(sender.frames))
	}
}

func TestUnsubscribeWhileClosedShrinksSet(t *testing.T) {
	sender := &mockSender{open: false}
	r := NewRegistry(sender, nil)
	ctx := context.Background()

	_ = r.Subscribe(ctx, 1)
	_ = r.Subscribe(ctx, 2)
	if err := r.Unsubscribe(ctx, 1); err != nil {
		t.Fatal(err)
	}

	if got := r.Snapshot(); !slices.Equal(got, []int64{2}) {
		t.Errorf("snapshot = %v, want [2]", got)
	}
	if len(sender.frames) != 0 {
		t.Errorf("sent %d intents while closed, want 0", len(sender.frames))
	}

	// The removed id must not be re-asserted on reconnect.
	sender.open = true
	r.OnReconnected(ctx)
	frames := decodeFrames(t, sender.frames)
	if len(frames) != 1 || frames[0]["conversation_id"] != float64(2) {
		t.Errorf("reconnect intents = %v, want single subscribe for 2", frames)
	}
}

func TestUnsubscribeUnknownIsNoop(t *testing.T) {
	sender := &mockSender{open: true}
	r := NewRegistry(sender, nil)

	if err := r.Unsubscribe(context.Background(), 5); err != nil {
		t.Fatal(err)
	}
	if len(sender.frames) != 0 {
		t.Errorf("sent %d intents for unknown id, want 0", len(sender.frames))
	}
}

func TestOnReconnectedReassertsEachOnce(t *testing.T) {
	sender := &mockSender{open: true}
	r := NewRegistry(sender, nil)
	ctx := context.Background()

	_ = r.Subscribe(ctx, 1)
	_ = r.Subscribe(ctx, 2)
	sender.frames = nil // drop the initial subscribe intents

	r.OnReconnected(ctx)

	frames := decodeFrames(t, sender.frames)
	if len(frames) != 2 {
		t.Fatalf("got %d reconnect intents, want 2", len(frames))
	}
	var ids []int64
	for _, f := range frames {
		if f["type"] != "subscribe" {
			t.Errorf("intent type = %v, want subscribe", f["type"])
		}
		ids = append(ids, int64(f["conversation_id"].(float64)))
	}
	slices.Sort(ids)
	if !slices.Equal(ids, []int64{1, 2}) {
		t.Errorf("re-asserted ids = %v, want [1 2]", ids)
	}
}

func TestFoldOrderIndependence(t *testing.T) {
	sender := &mockSender{open: true}
	r := NewRegistry(sender, nil)
	ctx := context.Background()

	// Arbitrary interleaving with duplicates folds to {2, 3}.
	_ = r.Subscribe(ctx, 1)
	_ = r.Subscribe(ctx, 2)
	_ = r.Subscribe(ctx, 1)
	_ = r.Unsubscribe(ctx, 1)
	_ = r.Subscribe(ctx, 3)
	_ = r.Unsubscribe(ctx, 4)

	if got := r.Snapshot(); !slices.Equal(got, []int64{2, 3}) {
		t.Errorf("snapshot = %v, want [2 3]", got)
	}
}
