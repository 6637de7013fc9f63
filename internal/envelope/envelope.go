package envelope

import "errors"

// Kind discriminates the closed set of realtime event types. Anything
// outside this set is dropped by the codec.
type Kind string

const (
	KindNewMessage     Kind = "new_message"
	KindTyping         Kind = "typing"
	KindOnlineStatus   Kind = "online_status"
	KindMessageRead    Kind = "message_read"
	KindReaction       Kind = "reaction"
	KindMessageEdited  Kind = "message_edited"
	KindMessageDeleted Kind = "message_deleted"
	KindSubscribed     Kind = "subscribed"
	KindUnsubscribed   Kind = "unsubscribed"
)

// Reaction actions carried by reaction envelopes and intents.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

var (
	// ErrUnknownKind marks an envelope whose type is outside the closed set.
	ErrUnknownKind = errors.New("unknown envelope kind")
	// ErrMissingField marks an envelope lacking a field its kind requires.
	ErrMissingField = errors.New("missing required field")
)

// Message is the message object embedded in new_message and
// message_edited envelopes.
type Message struct {
	ID             int64  `json:"id"`
	ConversationID int64  `json:"conversation_id"`
	SenderID       int64  `json:"sender_id"`
	SenderName     string `json:"sender_name,omitempty"`
	Content        string `json:"content"`
	MessageType    string `json:"message_type"`
	ReplyToID      int64  `json:"reply_to_id,omitempty"`
	Edited         bool   `json:"edited,omitempty"`
	Deleted        bool   `json:"deleted,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// Envelope is one decoded realtime event. Only the fields defined for
// its Kind are populated; everything else is the zero value.
type Envelope struct {
	Kind           Kind
	ConversationID int64
	MessageID      int64
	UserID         int64
	IsTyping       bool
	IsOnline       bool
	Emoji          string
	Action         string
	Timestamp      string
	Message        *Message
}
