package store

import (
	"database/sql"
	"time"
)

// UpsertMessage inserts or updates an authoritative message (idempotent
// on conversation_id + server_id). Soft-deleted rows stay deleted even
// if a stale refetch replays the original content.
func (db *DB) UpsertMessage(m *Message) error {
	_, err := db.Exec(`
		INSERT INTO messages (conversation_id, server_id, sender_id, sender_name, content, message_type, reply_to_id, edited, deleted, from_me, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(conversation_id, server_id) DO UPDATE SET
			sender_name = excluded.sender_name,
			content = CASE WHEN messages.deleted = 1 THEN messages.content ELSE excluded.content END,
			edited = MAX(messages.edited, excluded.edited),
			deleted = MAX(messages.deleted, excluded.deleted),
			status = excluded.status`,
		m.ConversationID, m.ServerID, m.SenderID, m.SenderName, m.Content, m.MessageType,
		nullableID(m.ReplyToID), m.Edited, m.Deleted, m.FromMe, m.Status, m.CreatedAt)
	return err
}

// InsertProvisional inserts an optimistic message keyed by client id.
// It has no server id until the authoritative copy arrives.
func (db *DB) InsertProvisional(m *Message) error {
	_, err := db.Exec(`
		INSERT INTO messages (conversation_id, client_id, sender_id, sender_name, content, message_type, reply_to_id, from_me, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?, ?)`,
		m.ConversationID, m.ClientID, m.SenderID, m.SenderName, m.Content, m.MessageType,
		nullableID(m.ReplyToID), StatusPending, m.CreatedAt)
	return err
}

// DeleteProvisional removes an optimistic message row. Used when the
// send is rolled back or superseded by the authoritative copy.
func (db *DB) DeleteProvisional(clientID string) error {
	_, err := db.Exec(`DELETE FROM messages WHERE client_id = ? AND server_id IS NULL`, clientID)
	return err
}

// MarkProvisionalFailed flips an optimistic message to failed so the UI
// can offer a retry. The row is kept, clearly marked.
func (db *DB) MarkProvisionalFailed(clientID string) error {
	_, err := db.Exec(`UPDATE messages SET status = ? WHERE client_id = ? AND server_id IS NULL`, StatusFailed, clientID)
	return err
}

// MarkMessageEdited replaces a message's content and sets the edited flag.
func (db *DB) MarkMessageEdited(conversationID, serverID int64, content string) error {
	_, err := db.Exec(`
		UPDATE messages SET content = ?, edited = 1
		WHERE conversation_id = ? AND server_id = ? AND deleted = 0`,
		content, conversationID, serverID)
	return err
}

// MarkMessageDeleted soft-deletes a message: content is redacted, the
// row and its deleted flag are retained.
func (db *DB) MarkMessageDeleted(conversationID, serverID int64) error {
	_, err := db.Exec(`
		UPDATE messages SET content = '', deleted = 1
		WHERE conversation_id = ? AND server_id = ?`,
		conversationID, serverID)
	return err
}

// ListMessages returns a conversation's messages in creation order,
// using keyset pagination by timestamp.
func (db *DB) ListMessages(conversationID, beforeTs int64, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 50
	}
	if beforeTs <= 0 {
		beforeTs = time.Now().UnixMilli() + 1
	}
	rows, err := db.Query(`
		SELECT id, conversation_id, server_id, client_id, sender_id, sender_name, content, message_type, reply_to_id, edited, deleted, from_me, status, created_at
		FROM messages
		WHERE conversation_id = ? AND created_at < ?
		ORDER BY created_at ASC
		LIMIT ?`, conversationID, beforeTs, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var msgs []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *m)
	}
	return msgs, rows.Err()
}

// GetMessageByServerID returns one authoritative message or nil.
func (db *DB) GetMessageByServerID(conversationID, serverID int64) (*Message, error) {
	row := db.QueryRow(`
		SELECT id, conversation_id, server_id, client_id, sender_id, sender_name, content, message_type, reply_to_id, edited, deleted, from_me, status, created_at
		FROM messages WHERE conversation_id = ? AND server_id = ?`, conversationID, serverID)
	m, err := scanMessage(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// MessageCount returns the number of cached messages.
func (db *DB) MessageCount() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM messages`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (*Message, error) {
	var m Message
	var serverID, replyToID sql.NullInt64
	var clientID sql.NullString
	if err := row.Scan(&m.ID, &m.ConversationID, &serverID, &clientID, &m.SenderID, &m.SenderName,
		&m.Content, &m.MessageType, &replyToID, &m.Edited, &m.Deleted, &m.FromMe, &m.Status, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.ServerID = serverID.Int64
	m.ClientID = clientID.String
	m.ReplyToID = replyToID.Int64
	return &m, nil
}

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func isNoRows(err error) bool {
	return err == sql.ErrNoRows
}
