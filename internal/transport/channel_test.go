package transport

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeConn is a scriptable connection: frames pushed into the channel
// are returned by Read, writes are recorded, Close unblocks Read.
type fakeConn struct {
	frames chan []byte

	mu     sync.Mutex
	writes [][]byte

	closeOnce sync.Once
	closed    chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		frames: make(chan []byte, 16),
		closed: make(chan struct{}),
	}
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

// fakeDialer hands out fakeConns and counts attempts.
type fakeDialer struct {
	mu    sync.Mutex
	conns []*fakeConn
	err   error
}

func (d *fakeDialer) dial(_ context.Context, _, _ string) (Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	conn := newFakeConn()
	d.conns = append(d.conns, conn)
	return conn, nil
}

func (d *fakeDialer) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.conns)
}

func (d *fakeDialer) last() *fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.conns) == 0 {
		return nil
	}
	return d.conns[len(d.conns)-1]
}

func testChannel(dialer *fakeDialer, token string, autoReconnect bool) (*Channel, chan string) {
	events := make(chan string, 64)
	c := NewChannel(Options{
		URL:               "ws://test",
		Token:             func() string { return token },
		AutoReconnect:     autoReconnect,
		ReconnectInterval: 30 * time.Millisecond,
		Dial:              dialer.dial,
	})
	c.SetHandlers(Handlers{
		OnConnecting:   func() { events <- "connecting" },
		OnConnected:    func() { events <- "connected" },
		OnDisconnected: func(error) { events <- "disconnected" },
		OnFrame:        func(data []byte) { events <- "frame:" + string(data) },
	})
	return c, events
}

func waitEvent(t *testing.T, events chan string, want string) {
	t.Helper()
	select {
	case got := <-events:
		if got != want {
			t.Fatalf("event = %q, want %q", got, want)
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for %q", want)
	}
}

func expectNoEvent(t *testing.T, events chan string, within time.Duration) {
	t.Helper()
	select {
	case got := <-events:
		t.Fatalf("unexpected event %q", got)
	case <-time.After(within):
	}
}

func TestOpenWithoutCredentialIsNoop(t *testing.T) {
	dialer := &fakeDialer{}
	c, events := testChannel(dialer, "", true)

	if err := c.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v, want silent no-op", err)
	}

	expectNoEvent(t, events, 50*time.Millisecond)
	if dialer.count() != 0 {
		t.Errorf("dial attempts = %d, want 0", dialer.count())
	}
	if c.HasCredential() {
		t.Error("HasCredential() = true, want false")
	}
}

func TestOpenConnectsAndDeliversFramesInOrder(t *testing.T) {
	dialer := &fakeDialer{}
	c, events := testChannel(dialer, "tok", true)
	defer func() { _ = c.Close() }()

	if err := c.Open(context.Background()); err != nil {
		t.Fatal(err)
	}
	waitEvent(t, events, "connecting")
	waitEvent(t, events, "connected")

	if !c.IsOpen() {
		t.Error("IsOpen() = false after connect")
	}

	conn := dialer.last()
	conn.frames <- []byte("one")
	conn.frames <- []byte("two")
	conn.frames <- []byte("three")

	waitEvent(t, events, "frame:one")
	waitEvent(t, events, "frame:two")
	waitEvent(t, events, "frame:three")
}

func TestOpenTwiceIsNoop(t *testing.T) {
	dialer := &fakeDialer{}
	c, events := testChannel(dialer, "tok", true)
	defer func() { _ = c.Close() }()

	_ = c.Open(context.Background())
	waitEvent(t, events, "connecting")
	waitEvent(t, events, "connected")

	if err := c.Open(context.Background()); err != nil {
		t.Fatal(err)
	}
	expectNoEvent(t, events, 50*time.Millisecond)
	if dialer.count() != 1 {
		t.Errorf("dial attempts = %d, want 1", dialer.count())
	}
}

func TestDropSchedulesExactlyOneReconnect(t *testing.T) {
	dialer := &fakeDialer{}
	c, events := testChannel(dialer, "tok", true)
	defer func() { _ = c.Close() }()

	_ = c.Open(context.Background())
	waitEvent(t, events, "connecting")
	waitEvent(t, events, "connected")

	// Simulate a network drop.
	_ = dialer.last().Close()
	waitEvent(t, events, "disconnected")

	// After the fixed interval a single new attempt is made.
	waitEvent(t, events, "connecting")
	waitEvent(t, events, "connected")
	if dialer.count() != 2 {
		t.Errorf("dial attempts = %d, want 2", dialer.count())
	}
}

func TestCloseCancelsPendingReconnect(t *testing.T) {
	dialer := &fakeDialer{}
	c, events := testChannel(dialer, "tok", true)

	_ = c.Open(context.Background())
	waitEvent(t, events, "connecting")
	waitEvent(t, events, "connected")

	_ = dialer.last().Close()
	waitEvent(t, events, "disconnected")

	// Close before the reconnect timer fires.
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	expectNoEvent(t, events, 120*time.Millisecond)
	if dialer.count() != 1 {
		t.Errorf("dial attempts = %d, want 1 (reconnect cancelled)", dialer.count())
	}
}

func TestExplicitCloseDoesNotReconnect(t *testing.T) {
	dialer := &fakeDialer{}
	c, events := testChannel(dialer, "tok", true)

	_ = c.Open(context.Background())
	waitEvent(t, events, "connecting")
	waitEvent(t, events, "connected")

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	// Neither a disconnected signal nor a reconnect attempt follows an
	// explicit close.
	expectNoEvent(t, events, 120*time.Millisecond)
	if dialer.count() != 1 {
		t.Errorf("dial attempts = %d, want 1", dialer.count())
	}
	if c.IsOpen() {
		t.Error("IsOpen() = true after Close")
	}
}

func TestAutoReconnectDisabled(t *testing.T) {
	dialer := &fakeDialer{}
	c, events := testChannel(dialer, "tok", false)

	_ = c.Open(context.Background())
	waitEvent(t, events, "connecting")
	waitEvent(t, events, "connected")

	_ = dialer.last().Close()
	waitEvent(t, events, "disconnected")

	expectNoEvent(t, events, 120*time.Millisecond)
	if dialer.count() != 1 {
		t.Errorf("dial attempts = %d, want 1 (no auto reconnect)", dialer.count())
	}
}

func TestDialFailureRetries(t *testing.T) {
	dialer := &fakeDialer{err: errors.New("connection refused")}
	c, events := testChannel(dialer, "tok", true)
	defer func() { _ = c.Close() }()

	_ = c.Open(context.Background())
	waitEvent(t, events, "connecting")
	waitEvent(t, events, "disconnected")

	// The failed dial schedules a retry; let it succeed this time.
	dialer.mu.Lock()
	dialer.err = nil
	dialer.mu.Unlock()

	waitEvent(t, events, "connecting")
	waitEvent(t, events, "connected")
}

func TestSendWhileClosed(t *testing.T) {
	c, _ := testChannel(&fakeDialer{}, "tok", true)

	err := c.Send(context.Background(), []byte("hello"))
	if !errors.Is(err, ErrNotOpen) {
		t.Errorf("Send error = %v, want ErrNotOpen", err)
	}
}

func TestSendWritesToConn(t *testing.T) {
	dialer := &fakeDialer{}
	c, events := testChannel(dialer, "tok", true)
	defer func() { _ = c.Close() }()

	_ = c.Open(context.Background())
	waitEvent(t, events, "connecting")
	waitEvent(t, events, "connected")

	if err := c.Send(context.Background(), []byte("intent")); err != nil {
		t.Fatal(err)
	}

	conn := dialer.last()
	conn.mu.Lock()
	defer conn.mu.Unlock()
	if len(conn.writes) != 1 || string(conn.writes[0]) != "intent" {
		t.Errorf("writes = %q, want [intent]", conn.writes)
	}
}
