package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/projexi/projexi/pkg/models"
)

// CommitInvestment inserts the investment row and bumps the idea's
// funding_received in a single transaction, so a failure leaves neither
// side applied. The returned total is read back inside the transaction
// and therefore reflects the committed state even under concurrent
// commits against the same idea.
func (r *SQLiteRepo) CommitInvestment(ctx context.Context, inv *models.Investment) (string, float64, error) {
	if inv == nil {
		return "", 0, fmt.Errorf("investment is nil")
	}

	tx, err := r.conn.BeginTx(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	ts := now()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO investments (id, idea_id, investor_id, amount, status, created) VALUES (?, ?, ?, ?, ?, ?)`,
		id, inv.IdeaID, inv.InvestorID, inv.Amount, inv.Status, ts); err != nil {
		return "", 0, fmt.Errorf("insert investment: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE ideas SET funding_received = funding_received + ? WHERE id = ?`,
		inv.Amount, inv.IdeaID); err != nil {
		return "", 0, fmt.Errorf("update funding: %w", err)
	}

	var total float64
	if err := tx.QueryRowContext(ctx,
		`SELECT funding_received FROM ideas WHERE id = ?`, inv.IdeaID).Scan(&total); err != nil {
		if err == sql.ErrNoRows {
			return "", 0, fmt.Errorf("idea %s not found", inv.IdeaID)
		}
		return "", 0, fmt.Errorf("read funding: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", 0, fmt.Errorf("commit: %w", err)
	}

	inv.ID = id
	inv.Created = ts
	return id, total, nil
}

func (r *SQLiteRepo) ListInvestmentsByInvestor(ctx context.Context, investorID string) ([]models.Investment, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT id, idea_id, investor_id, amount, status, created FROM investments WHERE investor_id = ? ORDER BY created DESC`, investorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Investment
	for rows.Next() {
		var inv models.Investment
		if err := rows.Scan(&inv.ID, &inv.IdeaID, &inv.InvestorID, &inv.Amount, &inv.Status, &inv.Created); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
