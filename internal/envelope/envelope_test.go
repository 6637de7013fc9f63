package envelope

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeNewMessage(t *testing.T) {
	frame := `{
		"type": "new_message",
		"conversation_id": 42,
		"message": {
			"id": 7, "conversation_id": 42, "sender_id": 9,
			"sender_name": "alice", "content": "hello",
			"message_type": "text", "created_at": "2026-08-24T10:00:00Z"
		},
		"timestamp": "2026-08-24T10:00:00Z"
	}`
	env, err := Decode([]byte(frame))
	if err != nil {
		t.Fatal(err)
	}
	if env.Kind != KindNewMessage {
		t.Errorf("kind = %q, want new_message", env.Kind)
	}
	if env.ConversationID != 42 {
		t.Errorf("conversation_id = %d, want 42", env.ConversationID)
	}
	if env.Message == nil || env.Message.ID != 7 || env.Message.Content != "hello" {
		t.Errorf("message = %+v, want id=7 content=hello", env.Message)
	}
}

func TestDecodeTyping(t *testing.T) {
	env, err := Decode([]byte(`{"type":"typing","conversation_id":1,"user_id":9,"is_typing":true}`))
	if err != nil {
		t.Fatal(err)
	}
	if env.Kind != KindTyping || env.UserID != 9 || !env.IsTyping {
		t.Errorf("env = %+v, want typing conv=1 user=9 is_typing=true", env)
	}

	// is_typing=false must decode, not be treated as absent.
	env, err = Decode([]byte(`{"type":"typing","conversation_id":1,"user_id":9,"is_typing":false}`))
	if err != nil {
		t.Fatal(err)
	}
	if env.IsTyping {
		t.Error("is_typing = true, want false")
	}
}

func TestDecodeReaction(t *testing.T) {
	env, err := Decode([]byte(`{"type":"reaction","conversation_id":3,"message_id":12,"emoji":"👍","action":"add"}`))
	if err != nil {
		t.Fatal(err)
	}
	if env.Emoji != "👍" || env.Action != ActionAdd || env.MessageID != 12 {
		t.Errorf("env = %+v", env)
	}

	if _, err := Decode([]byte(`{"type":"reaction","conversation_id":3,"message_id":12,"emoji":"👍","action":"bogus"}`)); !errors.Is(err, ErrMissingField) {
		t.Errorf("invalid action error = %v, want ErrMissingField", err)
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := Decode([]byte(`{"type":"server_maintenance","conversation_id":1}`))
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("error = %v, want ErrUnknownKind", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed frame")
	}
	if _, err := Decode([]byte(`[]`)); err == nil {
		t.Error("expected error for non-object frame")
	}
}

func TestDecodeMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		frame string
	}{
		{"new_message without message", `{"type":"new_message","conversation_id":1}`},
		{"new_message without conversation", `{"type":"new_message","message":{"id":1}}`},
		{"typing without is_typing", `{"type":"typing","conversation_id":1,"user_id":9}`},
		{"typing without user", `{"type":"typing","conversation_id":1,"is_typing":true}`},
		{"online_status without is_online", `{"type":"online_status","conversation_id":1,"user_id":9}`},
		{"message_read without message_id", `{"type":"message_read","conversation_id":1}`},
		{"message_deleted without conversation", `{"type":"message_deleted","message_id":5}`},
		{"reaction without emoji", `{"type":"reaction","conversation_id":1,"message_id":5,"action":"add"}`},
		{"subscribed without conversation", `{"type":"subscribed"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.frame))
			if !errors.Is(err, ErrMissingField) {
				t.Errorf("error = %v, want ErrMissingField", err)
			}
		})
	}
}

func TestEncodeIntents(t *testing.T) {
	tests := []struct {
		name   string
		encode func() ([]byte, error)
		want   map[string]any
	}{
		{
			"subscribe",
			func() ([]byte, error) { return EncodeSubscribe(42) },
			map[string]any{"type": "subscribe", "conversation_id": float64(42)},
		},
		{
			"unsubscribe",
			func() ([]byte, error) { return EncodeUnsubscribe(42) },
			map[string]any{"type": "unsubscribe", "conversation_id": float64(42)},
		},
		{
			"typing on",
			func() ([]byte, error) { return EncodeTyping(1, true) },
			map[string]any{"type": "typing", "conversation_id": float64(1), "is_typing": true},
		},
		{
			"typing off",
			func() ([]byte, error) { return EncodeTyping(1, false) },
			map[string]any{"type": "typing", "conversation_id": float64(1), "is_typing": false},
		},
		{
			"new_message",
			func() ([]byte, error) { return EncodeNewMessage(42, "hello", "text", 0) },
			map[string]any{"type": "new_message", "conversation_id": float64(42), "content": "hello", "message_type": "text"},
		},
		{
			"new_message reply",
			func() ([]byte, error) { return EncodeNewMessage(42, "hi", "text", 7) },
			map[string]any{"type": "new_message", "conversation_id": float64(42), "content": "hi", "message_type": "text", "reply_to_id": float64(7)},
		},
		{
			"mark_read",
			func() ([]byte, error) { return EncodeMarkRead(42, 99) },
			map[string]any{"type": "mark_read", "conversation_id": float64(42), "message_id": float64(99)},
		},
		{
			"reaction",
			func() ([]byte, error) { return EncodeReaction(99, "🎉", ActionRemove) },
			map[string]any{"type": "reaction", "message_id": float64(99), "emoji": "🎉", "action": "remove"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.encode()
			if err != nil {
				t.Fatal(err)
			}
			var got map[string]any
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Errorf("fields = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}
