package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/projexi/projexi/pkg/models"
)

func (r *SQLiteRepo) CreateConnection(ctx context.Context, c *models.Connection) (string, error) {
	if c == nil {
		return "", fmt.Errorf("connection is nil")
	}

	id := uuid.NewString()
	ts := now()
	_, err := r.conn.Exec(ctx,
		`INSERT INTO connections (id, requester_id, recipient_id, status, created) VALUES (?, ?, ?, ?, ?)`,
		id, c.RequesterID, c.RecipientID, c.Status, ts)
	if err != nil {
		return "", err
	}

	c.ID = id
	c.Created = ts
	return id, nil
}

func (r *SQLiteRepo) GetConnectionByID(ctx context.Context, id string) (*models.Connection, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, requester_id, recipient_id, status, created FROM connections WHERE id = ?`, id)
	var c models.Connection
	if err := row.Scan(&c.ID, &c.RequesterID, &c.RecipientID, &c.Status, &c.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *SQLiteRepo) ListConnectionsForUser(ctx context.Context, userID string) ([]models.Connection, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT id, requester_id, recipient_id, status, created FROM connections WHERE requester_id = ? OR recipient_id = ? ORDER BY created DESC`,
		userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Connection
	for rows.Next() {
		var c models.Connection
		if err := rows.Scan(&c.ID, &c.RequesterID, &c.RecipientID, &c.Status, &c.Created); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateConnectionStatus(ctx context.Context, id, status string) error {
	_, err := r.conn.Exec(ctx, `UPDATE connections SET status = ? WHERE id = ?`, status, id)
	return err
}

// CountAcceptedConnections counts accepted connections on either side of
// the relationship.
func (r *SQLiteRepo) CountAcceptedConnections(ctx context.Context, userID string) (int64, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT COUNT(1) FROM connections WHERE (requester_id = ? OR recipient_id = ?) AND status = ?`,
		userID, userID, models.ConnectionAccepted)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
