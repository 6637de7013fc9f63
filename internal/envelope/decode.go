package envelope

import (
	"encoding/json"
	"fmt"
)

// wireEnvelope mirrors the inbound frame shape. Pointer fields let the
// decoder distinguish absent from zero when enforcing per-kind
// requirements.
type wireEnvelope struct {
	Type           string   `json:"type"`
	ConversationID *int64   `json:"conversation_id"`
	Message        *Message `json:"message"`
	MessageID      *int64   `json:"message_id"`
	UserID         *int64   `json:"user_id"`
	IsTyping       *bool    `json:"is_typing"`
	IsOnline       *bool    `json:"is_online"`
	Emoji          string   `json:"emoji"`
	Action         string   `json:"action"`
	Timestamp      string   `json:"timestamp"`
}

// Decode parses one inbound frame into an Envelope. A malformed frame,
// an unknown kind, or a missing required field yields an error the
// caller logs and drops; decoding never panics and never tears down the
// connection.
func Decode(data []byte) (*Envelope, error) {
	var w wireEnvelope
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("unmarshal frame: %w", err)
	}

	env := &Envelope{
		Kind:      Kind(w.Type),
		Emoji:     w.Emoji,
		Action:    w.Action,
		Timestamp: w.Timestamp,
		Message:   w.Message,
	}
	if w.ConversationID != nil {
		env.ConversationID = *w.ConversationID
	}
	if w.MessageID != nil {
		env.MessageID = *w.MessageID
	}
	if w.UserID != nil {
		env.UserID = *w.UserID
	}
	if w.IsTyping != nil {
		env.IsTyping = *w.IsTyping
	}
	if w.IsOnline != nil {
		env.IsOnline = *w.IsOnline
	}

	switch env.Kind {
	case KindNewMessage:
		if err := require(w.ConversationID != nil, "conversation_id"); err != nil {
			return nil, err
		}
		if err := require(w.Message != nil, "message"); err != nil {
			return nil, err
		}
	case KindTyping:
		for _, r := range []struct {
			ok    bool
			field string
		}{
			{w.ConversationID != nil, "conversation_id"},
			{w.UserID != nil, "user_id"},
			{w.IsTyping != nil, "is_typing"},
		} {
			if err := require(r.ok, r.field); err != nil {
				return nil, err
			}
		}
	case KindOnlineStatus:
		for _, r := range []struct {
			ok    bool
			field string
		}{
			{w.ConversationID != nil, "conversation_id"},
			{w.UserID != nil, "user_id"},
			{w.IsOnline != nil, "is_online"},
		} {
			if err := require(r.ok, r.field); err != nil {
				return nil, err
			}
		}
	case KindMessageRead, KindMessageDeleted:
		if err := require(w.ConversationID != nil, "conversation_id"); err != nil {
			return nil, err
		}
		if err := require(w.MessageID != nil, "message_id"); err != nil {
			return nil, err
		}
	case KindReaction:
		for _, r := range []struct {
			ok    bool
			field string
		}{
			{w.ConversationID != nil, "conversation_id"},
			{w.MessageID != nil, "message_id"},
			{w.Emoji != "", "emoji"},
			{w.Action == ActionAdd || w.Action == ActionRemove, "action"},
		} {
			if err := require(r.ok, r.field); err != nil {
				return nil, err
			}
		}
	case KindMessageEdited:
		if err := require(w.ConversationID != nil, "conversation_id"); err != nil {
			return nil, err
		}
		if err := require(w.Message != nil, "message"); err != nil {
			return nil, err
		}
	case KindSubscribed, KindUnsubscribed:
		if err := require(w.ConversationID != nil, "conversation_id"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, w.Type)
	}

	return env, nil
}

func require(ok bool, field string) error {
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return nil
}
