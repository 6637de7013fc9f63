package envelope

import "encoding/json"

// Outbound intent types. The server treats each as a client request
// scoped to the current connection.
const (
	intentSubscribe   = "subscribe"
	intentUnsubscribe = "unsubscribe"
	intentTyping      = "typing"
	intentNewMessage  = "new_message"
	intentMarkRead    = "mark_read"
	intentReaction    = "reaction"
)

type conversationIntent struct {
	Type           string `json:"type"`
	ConversationID int64  `json:"conversation_id"`
}

type typingIntent struct {
	Type           string `json:"type"`
	ConversationID int64  `json:"conversation_id"`
	IsTyping       bool   `json:"is_typing"`
}

type newMessageIntent struct {
	Type           string `json:"type"`
	ConversationID int64  `json:"conversation_id"`
	Content        string `json:"content"`
	MessageType    string `json:"message_type"`
	ReplyToID      int64  `json:"reply_to_id,omitempty"`
}

type markReadIntent struct {
	Type           string `json:"type"`
	ConversationID int64  `json:"conversation_id"`
	MessageID      int64  `json:"message_id"`
}

type reactionIntent struct {
	Type      string `json:"type"`
	MessageID int64  `json:"message_id"`
	Emoji     string `json:"emoji"`
	Action    string `json:"action"`
}

// EncodeSubscribe builds a subscribe intent for one conversation.
func EncodeSubscribe(conversationID int64) ([]byte, error) {
	return json.Marshal(conversationIntent{Type: intentSubscribe, ConversationID: conversationID})
}

// EncodeUnsubscribe builds an unsubscribe intent for one conversation.
func EncodeUnsubscribe(conversationID int64) ([]byte, error) {
	return json.Marshal(conversationIntent{Type: intentUnsubscribe, ConversationID: conversationID})
}

// EncodeTyping builds a typing signal. is_typing=false is serialized
// explicitly; the server relies on it to clear the indicator.
func EncodeTyping(conversationID int64, isTyping bool) ([]byte, error) {
	return json.Marshal(typingIntent{Type: intentTyping, ConversationID: conversationID, IsTyping: isTyping})
}

// EncodeNewMessage builds a send intent. replyToID of 0 means not a reply.
func EncodeNewMessage(conversationID int64, content, messageType string, replyToID int64) ([]byte, error) {
	return json.Marshal(newMessageIntent{
		Type:           intentNewMessage,
		ConversationID: conversationID,
		Content:        content,
		MessageType:    messageType,
		ReplyToID:      replyToID,
	})
}

// EncodeMarkRead builds a mark-read intent up to the given message.
func EncodeMarkRead(conversationID, messageID int64) ([]byte, error) {
	return json.Marshal(markReadIntent{Type: intentMarkRead, ConversationID: conversationID, MessageID: messageID})
}

// EncodeReaction builds a reaction intent. action must be "add" or "remove".
func EncodeReaction(messageID int64, emoji, action string) ([]byte, error) {
	return json.Marshal(reactionIntent{Type: intentReaction, MessageID: messageID, Emoji: emoji, Action: action})
}
