package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/projexi/projexi/pkg/models"
)

const messageCols = `id, sender_id, recipient_id, content, read, created`

func (r *SQLiteRepo) CreateMessage(ctx context.Context, m *models.Message) (string, error) {
	if m == nil {
		return "", fmt.Errorf("message is nil")
	}

	id := uuid.NewString()
	ts := now()
	_, err := r.conn.Exec(ctx,
		`INSERT INTO messages (id, sender_id, recipient_id, content, read, created) VALUES (?, ?, ?, ?, 0, ?)`,
		id, m.SenderID, m.RecipientID, m.Content, ts)
	if err != nil {
		return "", err
	}

	m.ID = id
	m.Created = ts
	return id, nil
}

func (r *SQLiteRepo) ListMessagesForUser(ctx context.Context, userID string) ([]models.Message, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT `+messageCols+` FROM messages WHERE sender_id = ? OR recipient_id = ? ORDER BY created DESC`,
		userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMessages(rows)
}

func (r *SQLiteRepo) ListThread(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT `+messageCols+` FROM messages WHERE (sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?) ORDER BY created ASC`,
		userID, otherID, otherID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMessages(rows)
}

func (r *SQLiteRepo) MarkThreadRead(ctx context.Context, recipientID, senderID string) error {
	_, err := r.conn.Exec(ctx,
		`UPDATE messages SET read = 1 WHERE recipient_id = ? AND sender_id = ? AND read = 0`,
		recipientID, senderID)
	return err
}

func collectMessages(rows *sql.Rows) ([]models.Message, error) {
	var out []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.Read, &m.Created); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
