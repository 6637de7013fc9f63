package rtc

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pcarvalho/deskd/internal/bus"
	"github.com/pcarvalho/deskd/internal/presence"
	"github.com/pcarvalho/deskd/internal/reconcile"
	"github.com/pcarvalho/deskd/internal/status"
	"github.com/pcarvalho/deskd/internal/store"
	"github.com/pcarvalho/deskd/internal/subs"
	"github.com/pcarvalho/deskd/internal/transport"
	"go.uber.org/zap"
)

type fakeConn struct {
	frames chan []byte

	mu     sync.Mutex
	writes [][]byte

	closeOnce sync.Once
	closed    chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{frames: make(chan []byte, 16), closed: make(chan struct{})}
}

func (f *fakeConn) Read(ctx context.Context) ([]byte, error) {
	select {
	case data := <-f.frames:
		return data, nil
	case <-f.closed:
		return nil, errors.New("connection closed")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *fakeConn) Write(_ context.Context, data []byte) error {
	f.mu.Lock()
	f.writes = append(f.writes, data)
	f.mu.Unlock()
	return nil
}

func (f *fakeConn) Close() error {
	f.closeOnce.Do(func() { close(f.closed) })
	return nil
}

func (f *fakeConn) written() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.writes))
	for i, w := range f.writes {
		out[i] = string(w)
	}
	return out
}

type fakeDialer struct {
	mu    sync.Mutex
	conns []*fakeConn
}

func (d *fakeDialer) dial(context.Context, string, string) (transport.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	conn := newFakeConn()
	d.conns = append(d.conns, conn)
	return conn, nil
}

func (d *fakeDialer) last() *fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.conns) == 0 {
		return nil
	}
	return d.conns[len(d.conns)-1]
}

type testClient struct {
	client *Client
	dialer *fakeDialer
	db     *store.DB
	bus    *bus.Bus
}

func newTestClient(t *testing.T, token string) *testClient {
	t.Helper()

	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	b := bus.New()
	logger := zap.NewNop()
	dialer := &fakeDialer{}

	channel := transport.NewChannel(transport.Options{
		URL:               "ws://test",
		Token:             func() string { return token },
		AutoReconnect:     true,
		ReconnectInterval: 30 * time.Millisecond,
		Dial:              dialer.dial,
	})
	machine := status.NewMachine(b)
	inv := store.NewInvalidator(db, b, logger)
	bridge := reconcile.NewBridge(db, inv, b, logger)
	agg := presence.NewAggregator(0, inv, b, logger)
	registry := subs.NewRegistry(channel, logger)

	client := NewClient(channel, machine, registry, agg, bridge, nil, b, logger)
	t.Cleanup(func() { _ = client.Disconnect() })

	return &testClient{client: client, dialer: dialer, db: db, bus: b}
}

func (tc *testClient) connect(t *testing.T) {
	t.Helper()
	ch, unsub := tc.bus.Subscribe(bus.KindConnected, 10)
	defer unsub()

	if err := tc.client.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for connect")
	}
}

func TestSendWhileDisconnectedRejects(t *testing.T) {
	tc := newTestClient(t, "tok")

	_, err := tc.client.Send(context.Background(), 42, "hello", "text", 0)
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("Send error = %v, want ErrNotConnected", err)
	}

	// Rejection leaves no optimistic state behind.
	sends, _ := tc.db.PendingSends(42)
	if len(sends) != 0 {
		t.Errorf("pending sends = %+v, want none", sends)
	}
	msgs, _ := tc.db.ListMessages(42, 0, 10)
	if len(msgs) != 0 {
		t.Errorf("messages = %+v, want none", msgs)
	}
}

func TestConnectWithoutCredentialIsNoop(t *testing.T) {
	tc := newTestClient(t, "")

	if err := tc.client.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v, want silent no-op", err)
	}
	if tc.client.State() != status.Disconnected {
		t.Errorf("state = %v, want Disconnected", tc.client.State())
	}
}

func TestConnectTransitionsAndResubscribes(t *testing.T) {
	tc := newTestClient(t, "tok")

	// Subscriptions registered while offline are re-asserted on connect.
	if err := tc.client.Subscribe(context.Background(), 42); err != nil {
		t.Fatal(err)
	}
	if err := tc.client.Subscribe(context.Background(), 7); err != nil {
		t.Fatal(err)
	}

	tc.connect(t)

	if tc.client.State() != status.Open {
		t.Errorf("state = %v, want Open", tc.client.State())
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(tc.dialer.last().written()) >= 2 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	writes := tc.dialer.last().written()
	want := []string{
		`{"type":"subscribe","conversation_id":7}`,
		`{"type":"subscribe","conversation_id":42}`,
	}
	if len(writes) != 2 || writes[0] != want[0] || writes[1] != want[1] {
		t.Errorf("writes = %v, want %v", writes, want)
	}
}

func TestSendTransmitsAndRecordsOptimistically(t *testing.T) {
	tc := newTestClient(t, "tok")
	tc.connect(t)

	clientID, err := tc.client.Send(context.Background(), 42, "hello", "text", 0)
	if err != nil {
		t.Fatal(err)
	}
	if clientID == "" {
		t.Fatal("empty client id")
	}

	msgs, _ := tc.db.ListMessages(42, 0, 10)
	if len(msgs) != 1 || msgs[0].Status != store.StatusPending || msgs[0].ClientID != clientID {
		t.Errorf("messages = %+v, want one pending provisional", msgs)
	}

	writes := tc.dialer.last().written()
	wantFrame := `{"type":"new_message","conversation_id":42,"content":"hello","message_type":"text"}`
	if len(writes) != 1 || writes[0] != wantFrame {
		t.Errorf("writes = %v, want [%s]", writes, wantFrame)
	}
}

func TestInboundMessageLandsInCache(t *testing.T) {
	tc := newTestClient(t, "tok")
	tc.connect(t)

	ch, unsub := tc.bus.Subscribe(bus.KindEnvelope, 10)
	defer unsub()

	tc.dialer.last().frames <- []byte(`{"type":"new_message","conversation_id":42,"message":{"id":7,"conversation_id":42,"sender_id":9,"sender_name":"alice","content":"hello","message_type":"text","created_at":"2026-08-24T10:00:00Z"}}`)

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for envelope event")
	}

	m, err := tc.db.GetMessageByServerID(42, 7)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil || m.Content != "hello" {
		t.Errorf("message = %+v", m)
	}
}

func TestMalformedFrameIsDropped(t *testing.T) {
	tc := newTestClient(t, "tok")
	tc.connect(t)

	ch, unsub := tc.bus.Subscribe(bus.KindEnvelope, 10)
	defer unsub()

	// A garbage frame must not break the stream for the frames after it.
	tc.dialer.last().frames <- []byte(`{{{not json`)
	tc.dialer.last().frames <- []byte(`{"type":"new_message","conversation_id":42,"message":{"id":7,"conversation_id":42,"sender_id":9,"sender_name":"alice","content":"still here","message_type":"text","created_at":"2026-08-24T10:00:00Z"}}`)

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for envelope after malformed frame")
	}

	m, _ := tc.db.GetMessageByServerID(42, 7)
	if m == nil || m.Content != "still here" {
		t.Errorf("message = %+v", m)
	}
}

func TestTypingFrameUpdatesPresence(t *testing.T) {
	tc := newTestClient(t, "tok")
	tc.connect(t)

	tc.dialer.last().frames <- []byte(`{"type":"typing","conversation_id":42,"user_id":9,"is_typing":true}`)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if users := tc.client.TypingUsers(42); len(users) == 1 && users[0] == 9 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("typing users = %v, want [9]", tc.client.TypingUsers(42))
}

func TestDisconnectResetsPresence(t *testing.T) {
	tc := newTestClient(t, "tok")
	tc.connect(t)

	tc.dialer.last().frames <- []byte(`{"type":"typing","conversation_id":42,"user_id":9,"is_typing":true}`)
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) && len(tc.client.TypingUsers(42)) == 0 {
		time.Sleep(10 * time.Millisecond)
	}

	if err := tc.client.Disconnect(); err != nil {
		t.Fatal(err)
	}
	if tc.client.State() != status.Disconnected {
		t.Errorf("state = %v, want Disconnected", tc.client.State())
	}
	if users := tc.client.TypingUsers(42); len(users) != 0 {
		t.Errorf("typing users = %v, want cleared on disconnect", users)
	}
}
