package store

// Message statuses in the local cache.
const (
	StatusPending   = "pending"   // optimistic, not yet confirmed by the server
	StatusDelivered = "delivered" // authoritative, pushed or refetched
	StatusFailed    = "failed"    // optimistic send that could not be transmitted
)

// Conversation is the cached summary of one service desk conversation.
type Conversation struct {
	ID                 int64
	Subject            string
	Kind               string
	UnreadCount        int
	LastMessageAt      int64
	LastMessagePreview string
}

// Message is one cached message. A provisional (optimistic) message has
// ClientID set and ServerID zero; an authoritative one has ServerID set.
// Deleted messages keep their row with content redacted.
type Message struct {
	ID             int64
	ConversationID int64
	ServerID       int64
	ClientID       string
	SenderID       int64
	SenderName     string
	Content        string
	MessageType    string
	ReplyToID      int64
	Edited         bool
	Deleted        bool
	FromMe         bool
	Status         string
	CreatedAt      int64
}

// PendingSend is one client-initiated send awaiting server confirmation.
type PendingSend struct {
	ClientID       string
	ConversationID int64
	Content        string
	MessageType    string
	ReplyToID      int64
	Status         string // pending, confirmed, failed
	ServerID       int64
	ErrorMessage   string
	CreatedAt      int64
}
