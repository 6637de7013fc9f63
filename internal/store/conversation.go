package store

import "time"

// UpsertConversation inserts or updates a conversation summary
// (idempotent on id). The newest last-message pointer wins, so replayed
// or out-of-order upserts cannot move a conversation backwards.
func (db *DB) UpsertConversation(c *Conversation) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO conversations (id, subject, kind, unread_count, last_message_at, last_message_preview, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			subject = CASE WHEN excluded.subject != '' THEN excluded.subject ELSE conversations.subject END,
			kind = CASE WHEN excluded.kind != '' THEN excluded.kind ELSE conversations.kind END,
			unread_count = excluded.unread_count,
			last_message_at = MAX(conversations.last_message_at, excluded.last_message_at),
			last_message_preview = CASE WHEN excluded.last_message_at >= conversations.last_message_at THEN excluded.last_message_preview ELSE conversations.last_message_preview END,
			updated_at = excluded.updated_at`,
		c.ID, c.Subject, c.Kind, c.UnreadCount, c.LastMessageAt, c.LastMessagePreview, now)
	return err
}

// TouchConversation advances a conversation's last-message pointer and
// preview without touching the unread counter (which only the refetch
// path knows authoritatively). The newest pointer wins.
func (db *DB) TouchConversation(id, lastMessageAt int64, preview string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO conversations (id, last_message_at, last_message_preview, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_message_at = MAX(conversations.last_message_at, excluded.last_message_at),
			last_message_preview = CASE WHEN excluded.last_message_at >= conversations.last_message_at THEN excluded.last_message_preview ELSE conversations.last_message_preview END,
			updated_at = excluded.updated_at`,
		id, lastMessageAt, preview, now)
	return err
}

// GetConversation returns one conversation or nil if not cached.
func (db *DB) GetConversation(id int64) (*Conversation, error) {
	row := db.QueryRow(`
		SELECT id, subject, kind, unread_count, last_message_at, last_message_preview
		FROM conversations WHERE id = ?`, id)
	var c Conversation
	if err := row.Scan(&c.ID, &c.Subject, &c.Kind, &c.UnreadCount, &c.LastMessageAt, &c.LastMessagePreview); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ListConversations returns conversations ordered by most recent activity.
func (db *DB) ListConversations(limit, offset int) ([]Conversation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT id, subject, kind, unread_count, last_message_at, last_message_preview
		FROM conversations
		ORDER BY last_message_at DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var convs []Conversation
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.ID, &c.Subject, &c.Kind, &c.UnreadCount, &c.LastMessageAt, &c.LastMessagePreview); err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

// ConversationCount returns the number of cached conversations.
func (db *DB) ConversationCount() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM conversations`).Scan(&n)
	return n, err
}
