// Package transport owns the single physical connection to the
// realtime endpoint. It knows nothing about envelope semantics; it
// moves frames and manages lifecycle, including the one authoritative
// reconnect timer.
package transport

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrNotOpen is returned by Send when no connection is established.
var ErrNotOpen = errors.New("transport channel not open")

// DefaultReconnectInterval is the fixed delay before a reconnect
// attempt. No backoff and no jitter, deliberately.
const DefaultReconnectInterval = 3 * time.Second

const dialTimeout = 15 * time.Second

// Conn is one established bidirectional connection.
type Conn interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close() error
}

// DialFunc establishes a connection with a bearer credential.
type DialFunc func(ctx context.Context, url, token string) (Conn, error)

// Handlers receive lifecycle signals and inbound frames. All callbacks
// are invoked from the channel's own goroutines, one at a time.
type Handlers struct {
	OnConnecting   func()
	OnConnected    func()
	OnDisconnected func(err error)
	OnFrame        func(data []byte)
}

// Options configures a Channel.
type Options struct {
	URL               string
	Token             func() string // credential source; "" means not authenticated
	AutoReconnect     bool
	ReconnectInterval time.Duration
	Dial              DialFunc // nil selects the websocket dialer
	Logger            *zap.Logger
}

type phase int

const (
	phaseIdle phase = iota
	phaseDialing
	phaseOpen
)

// Channel owns one connection. At most one live dial attempt and one
// pending reconnect timer exist at any time.
type Channel struct {
	opts     Options
	handlers Handlers

	mu             sync.Mutex
	conn           Conn
	phase          phase
	closed         bool
	reconnectTimer *time.Timer
}

// NewChannel creates a channel. Handlers must be set with SetHandlers
// before Open.
func NewChannel(opts Options) *Channel {
	if opts.ReconnectInterval <= 0 {
		opts.ReconnectInterval = DefaultReconnectInterval
	}
	if opts.Dial == nil {
		opts.Dial = dialWebsocket
	}
	if opts.Token == nil {
		opts.Token = func() string { return "" }
	}
	return &Channel{opts: opts}
}

// SetHandlers registers lifecycle and frame callbacks. Must be called
// before the first Open.
func (c *Channel) SetHandlers(h Handlers) {
	c.handlers = h
}

// Open arms the connection. It returns immediately; completion is
// observed through the connected/disconnected handlers. Without a
// credential Open is a silent no-op (expected pre-login state), and a
// second Open while an attempt or connection is live is also a no-op.
func (c *Channel) Open(ctx context.Context) error {
	token := c.opts.Token()
	if token == "" {
		if c.opts.Logger != nil {
			c.opts.Logger.Info("no credential available, skipping connect")
		}
		return nil
	}

	c.mu.Lock()
	if c.phase != phaseIdle {
		c.mu.Unlock()
		return nil
	}
	c.closed = false
	c.stopReconnectTimerLocked()
	c.phase = phaseDialing
	c.mu.Unlock()

	if h := c.handlers.OnConnecting; h != nil {
		h()
	}
	go c.dialAndRead(token)
	return nil
}

// Close cancels any pending reconnect and tears down the connection
// deterministically. No reconnect follows an explicit Close.
func (c *Channel) Close() error {
	c.mu.Lock()
	c.closed = true
	c.stopReconnectTimerLocked()
	conn := c.conn
	c.conn = nil
	c.phase = phaseIdle
	c.mu.Unlock()

	if conn != nil {
		return conn.Close()
	}
	return nil
}

// Send transmits one frame. Fails with ErrNotOpen when disconnected;
// there is no queueing and no retry at this layer.
func (c *Channel) Send(ctx context.Context, data []byte) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return ErrNotOpen
	}
	return conn.Write(ctx, data)
}

// IsOpen reports whether a connection is established.
func (c *Channel) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase == phaseOpen
}

// HasCredential reports whether a bearer credential is available.
func (c *Channel) HasCredential() bool {
	return c.opts.Token() != ""
}

func (c *Channel) dialAndRead(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	conn, err := c.opts.Dial(ctx, c.opts.URL, token)
	cancel()
	if err != nil {
		c.handleDrop(err)
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		_ = conn.Close()
		return
	}
	c.conn = conn
	c.phase = phaseOpen
	c.mu.Unlock()

	if h := c.handlers.OnConnected; h != nil {
		h()
	}

	// Frames are delivered strictly in arrival order from this single
	// reader goroutine; there is no reordering buffer.
	for {
		data, err := conn.Read(context.Background())
		if err != nil {
			c.handleDrop(err)
			return
		}
		if h := c.handlers.OnFrame; h != nil {
			h(data)
		}
	}
}

func (c *Channel) handleDrop(err error) {
	c.mu.Lock()
	wasClosed := c.closed
	c.conn = nil
	c.phase = phaseIdle
	if !wasClosed && c.opts.AutoReconnect {
		c.scheduleReconnectLocked()
	}
	c.mu.Unlock()

	if wasClosed {
		return
	}
	if c.opts.Logger != nil {
		c.opts.Logger.Warn("transport dropped", zap.Error(err))
	}
	if h := c.handlers.OnDisconnected; h != nil {
		h(err)
	}
}

// scheduleReconnectLocked arms the single reconnect timer, cancelling
// any pending one first so attempts never overlap.
func (c *Channel) scheduleReconnectLocked() {
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
	}
	c.reconnectTimer = time.AfterFunc(c.opts.ReconnectInterval, func() {
		_ = c.Open(context.Background())
	})
}

func (c *Channel) stopReconnectTimerLocked() {
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
}
