// Package rtc is the realtime client facade: one object that wires the
// transport channel, the connection state machine, the subscription
// registry, the presence aggregator and the reconciliation bridge into
// the surface the daemon API talks to.
package rtc

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pcarvalho/deskd/internal/bus"
	"github.com/pcarvalho/deskd/internal/envelope"
	"github.com/pcarvalho/deskd/internal/presence"
	"github.com/pcarvalho/deskd/internal/reconcile"
	"github.com/pcarvalho/deskd/internal/rest"
	"github.com/pcarvalho/deskd/internal/status"
	"github.com/pcarvalho/deskd/internal/subs"
	"github.com/pcarvalho/deskd/internal/transport"
	"go.uber.org/zap"
)

// ErrNotConnected is returned by operations that require an open
// channel. Sends are rejected outright while disconnected; no
// optimistic state is created for them.
var ErrNotConnected = errors.New("realtime channel not connected")

// Client is the realtime conversation client.
type Client struct {
	channel  *transport.Channel
	machine  *status.Machine
	registry *subs.Registry
	presence *presence.Aggregator
	bridge   *reconcile.Bridge
	rest     *rest.Client
	bus      *bus.Bus
	logger   *zap.Logger
}

// NewClient wires the facade. The channel must not have handlers set;
// the client installs its own.
func NewClient(
	channel *transport.Channel,
	machine *status.Machine,
	registry *subs.Registry,
	agg *presence.Aggregator,
	bridge *reconcile.Bridge,
	restClient *rest.Client,
	b *bus.Bus,
	logger *zap.Logger,
) *Client {
	c := &Client{
		channel:  channel,
		machine:  machine,
		registry: registry,
		presence: agg,
		bridge:   bridge,
		rest:     restClient,
		bus:      b,
		logger:   logger,
	}
	channel.SetHandlers(transport.Handlers{
		OnConnecting:   c.onConnecting,
		OnConnected:    c.onConnected,
		OnDisconnected: c.onDisconnected,
		OnFrame:        c.onFrame,
	})
	return c
}

// Connect arms the realtime channel. Without a credential this is a
// silent no-op: the session simply stays in its pre-login state.
func (c *Client) Connect(ctx context.Context) error {
	return c.channel.Open(ctx)
}

// Disconnect tears the channel down deterministically. No reconnect
// follows, and all ephemeral presence state is dropped.
func (c *Client) Disconnect() error {
	if cur := c.machine.Current(); cur == status.Open || cur == status.Connecting {
		if err := c.machine.Transition(status.Closing); err != nil && c.logger != nil {
			c.logger.Warn("state transition rejected", zap.Error(err))
		}
	}

	err := c.channel.Close()
	c.presence.Reset()

	if c.machine.Current() != status.Disconnected {
		if terr := c.machine.Transition(status.Disconnected); terr != nil && c.logger != nil {
			c.logger.Warn("state transition rejected", zap.Error(terr))
		}
	}
	if c.bus != nil {
		c.bus.Emit(bus.KindDisconnected, nil)
	}
	return err
}

// State returns the current connection state.
func (c *Client) State() status.State {
	return c.machine.Current()
}

// IsOpen reports whether the channel is established.
func (c *Client) IsOpen() bool {
	return c.channel.IsOpen()
}

// HasCredential reports whether a bearer credential is available.
func (c *Client) HasCredential() bool {
	return c.channel.HasCredential()
}

// Subscribe starts live updates for a conversation. The registry keeps
// the id across reconnects.
func (c *Client) Subscribe(ctx context.Context, conversationID int64) error {
	return c.registry.Subscribe(ctx, conversationID)
}

// Unsubscribe stops live updates for a conversation.
func (c *Client) Unsubscribe(ctx context.Context, conversationID int64) error {
	return c.registry.Unsubscribe(ctx, conversationID)
}

// Subscriptions returns the tracked conversation ids, sorted.
func (c *Client) Subscriptions() []int64 {
	return c.registry.Snapshot()
}

// TypingUsers returns the users currently typing in a conversation.
func (c *Client) TypingUsers(conversationID int64) []int64 {
	return c.presence.TypingUsers(conversationID)
}

// Send transmits a message. While disconnected the send is rejected
// with ErrNotConnected and nothing is recorded. On an open channel the
// message is inserted optimistically first; a transmit failure rolls
// that back and surfaces the error. Returns the client-generated id
// used to correlate the eventual server confirmation.
func (c *Client) Send(ctx context.Context, conversationID int64, content, messageType string, replyToID int64) (string, error) {
	if !c.channel.IsOpen() {
		return "", ErrNotConnected
	}
	if messageType == "" {
		messageType = "text"
	}

	clientID := uuid.NewString()
	if err := c.bridge.OptimisticInsert(clientID, conversationID, content, messageType, replyToID); err != nil {
		return "", err
	}

	data, err := envelope.EncodeNewMessage(conversationID, content, messageType, replyToID)
	if err != nil {
		_ = c.bridge.RollbackSend(clientID, err)
		return "", fmt.Errorf("encode message: %w", err)
	}
	if err := c.channel.Send(ctx, data); err != nil {
		if rbErr := c.bridge.RollbackSend(clientID, err); rbErr != nil && c.logger != nil {
			c.logger.Error("failed to roll back send", zap.Error(rbErr), zap.String("client_id", clientID))
		}
		return "", fmt.Errorf("send message: %w", err)
	}
	return clientID, nil
}

// SendAttachment uploads a file over REST, then announces it in the
// conversation as a file message whose content is the attachment URL.
func (c *Client) SendAttachment(ctx context.Context, conversationID int64, fileName string, r io.Reader) (string, error) {
	if !c.channel.IsOpen() {
		return "", ErrNotConnected
	}
	att, err := c.rest.UploadAttachment(ctx, conversationID, fileName, r)
	if err != nil {
		return "", err
	}
	return c.Send(ctx, conversationID, att.URL, "file", 0)
}

// SetTyping signals the local user's typing state. Fire-and-forget:
// no local state changes, and while disconnected it is rejected.
func (c *Client) SetTyping(ctx context.Context, conversationID int64, isTyping bool) error {
	if !c.channel.IsOpen() {
		return ErrNotConnected
	}
	data, err := envelope.EncodeTyping(conversationID, isTyping)
	if err != nil {
		return fmt.Errorf("encode typing: %w", err)
	}
	return c.channel.Send(ctx, data)
}

// MarkRead marks the conversation read up to a message. The unread
// counter only changes when the server's confirmation invalidates the
// summary list.
func (c *Client) MarkRead(ctx context.Context, conversationID, messageID int64) error {
	if !c.channel.IsOpen() {
		return ErrNotConnected
	}
	data, err := envelope.EncodeMarkRead(conversationID, messageID)
	if err != nil {
		return fmt.Errorf("encode mark read: %w", err)
	}
	return c.channel.Send(ctx, data)
}

// React adds or removes a reaction on a message. action must be "add"
// or "remove".
func (c *Client) React(ctx context.Context, messageID int64, emoji, action string) error {
	if !c.channel.IsOpen() {
		return ErrNotConnected
	}
	data, err := envelope.EncodeReaction(messageID, emoji, action)
	if err != nil {
		return fmt.Errorf("encode reaction: %w", err)
	}
	return c.channel.Send(ctx, data)
}

func (c *Client) onConnecting() {
	if err := c.machine.Transition(status.Connecting); err != nil && c.logger != nil {
		c.logger.Warn("state transition rejected", zap.Error(err))
	}
}

func (c *Client) onConnected() {
	if err := c.machine.Transition(status.Open); err != nil && c.logger != nil {
		c.logger.Warn("state transition rejected", zap.Error(err))
	}
	// Subscriptions are connection-scoped server-side; re-assert the set.
	c.registry.OnReconnected(context.Background())
	if c.bus != nil {
		c.bus.Emit(bus.KindConnected, nil)
	}
}

func (c *Client) onDisconnected(err error) {
	if c.machine.Current() != status.Disconnected {
		if terr := c.machine.Transition(status.Disconnected); terr != nil && c.logger != nil {
			c.logger.Warn("state transition rejected", zap.Error(terr))
		}
	}
	c.presence.Reset()
	if c.bus != nil {
		c.bus.Emit(bus.KindDisconnected, nil)
	}
	if c.logger != nil {
		c.logger.Info("realtime channel disconnected", zap.Error(err))
	}
}

func (c *Client) onFrame(data []byte) {
	env, err := envelope.Decode(data)
	if err != nil {
		// Tolerate-and-drop: one malformed frame must never take the
		// stream down.
		if c.logger != nil {
			c.logger.Warn("dropping malformed frame", zap.Error(err))
		}
		return
	}

	switch env.Kind {
	case envelope.KindTyping:
		c.presence.Handle(env)
	case envelope.KindOnlineStatus:
		c.presence.Handle(env)
		c.bridge.Handle(env)
	default:
		c.bridge.Handle(env)
	}

	if c.bus != nil {
		c.bus.Emit(bus.KindEnvelope, env)
	}
}
