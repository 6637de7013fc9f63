package store

import (
	"database/sql"
	"time"
)

// QueuePendingSend records a client-initiated send awaiting server
// confirmation.
func (db *DB) QueuePendingSend(p *PendingSend) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO pending_sends (client_id, conversation_id, content, message_type, reply_to_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 'pending', ?, ?)`,
		p.ClientID, p.ConversationID, p.Content, p.MessageType, nullableID(p.ReplyToID), now, now)
	return err
}

// ConfirmPendingSend marks a pending send confirmed with the server id
// that superseded it.
func (db *DB) ConfirmPendingSend(clientID string, serverID int64) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		UPDATE pending_sends SET status = 'confirmed', server_id = ?, updated_at = ?
		WHERE client_id = ?`, serverID, now, clientID)
	return err
}

// FailPendingSend marks a pending send failed with a diagnostic message.
func (db *DB) FailPendingSend(clientID, errMsg string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		UPDATE pending_sends SET status = 'failed', error_message = ?, updated_at = ?
		WHERE client_id = ?`, errMsg, now, clientID)
	return err
}

// OldestPendingSend returns the oldest unconfirmed send in a
// conversation with the given content, or nil. Used to match an
// authoritative inbound message back to the optimistic record, since
// the wire format carries no client id.
func (db *DB) OldestPendingSend(conversationID int64, content string) (*PendingSend, error) {
	row := db.QueryRow(`
		SELECT client_id, conversation_id, content, message_type, reply_to_id, status, server_id, error_message, created_at
		FROM pending_sends
		WHERE conversation_id = ? AND content = ? AND status = 'pending'
		ORDER BY created_at ASC LIMIT 1`, conversationID, content)
	p, err := scanPendingSend(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// PendingSends returns unconfirmed sends, oldest first. conversationID
// of 0 means all conversations.
func (db *DB) PendingSends(conversationID int64) ([]PendingSend, error) {
	query := `
		SELECT client_id, conversation_id, content, message_type, reply_to_id, status, server_id, error_message, created_at
		FROM pending_sends WHERE status = 'pending'`
	args := []any{}
	if conversationID != 0 {
		query += ` AND conversation_id = ?`
		args = append(args, conversationID)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sends []PendingSend
	for rows.Next() {
		p, err := scanPendingSend(rows)
		if err != nil {
			return nil, err
		}
		sends = append(sends, *p)
	}
	return sends, rows.Err()
}

func scanPendingSend(row rowScanner) (*PendingSend, error) {
	var p PendingSend
	var replyToID, serverID sql.NullInt64
	if err := row.Scan(&p.ClientID, &p.ConversationID, &p.Content, &p.MessageType,
		&replyToID, &p.Status, &serverID, &p.ErrorMessage, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.ReplyToID = replyToID.Int64
	p.ServerID = serverID.Int64
	return &p, nil
}
