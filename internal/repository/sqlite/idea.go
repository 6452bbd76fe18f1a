package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/projexi/projexi/pkg/models"
)

const ideaCols = `id, entrepreneur_id, title, description, industry, funding_goal, funding_received, status, views, created`

func scanIdea(row interface{ Scan(...any) error }) (*models.Idea, error) {
	var i models.Idea
	if err := row.Scan(&i.ID, &i.EntrepreneurID, &i.Title, &i.Description, &i.Industry, &i.FundingGoal, &i.FundingReceived, &i.Status, &i.Views, &i.Created); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *SQLiteRepo) CreateIdea(ctx context.Context, i *models.Idea) (string, error) {
	if i == nil {
		return "", fmt.Errorf("idea is nil")
	}

	id := uuid.NewString()
	ts := now()
	_, err := r.conn.Exec(ctx,
		`INSERT INTO ideas (id, entrepreneur_id, title, description, industry, funding_goal, funding_received, status, views, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, i.EntrepreneurID, i.Title, i.Description, i.Industry, i.FundingGoal, i.FundingReceived, i.Status, i.Views, ts)
	if err != nil {
		return "", err
	}

	i.ID = id
	i.Created = ts
	return id, nil
}

func (r *SQLiteRepo) GetIdeaByID(ctx context.Context, id string) (*models.Idea, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+ideaCols+` FROM ideas WHERE id = ?`, id)
	i, err := scanIdea(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return i, nil
}

func (r *SQLiteRepo) ListActiveIdeas(ctx context.Context, limit int) ([]models.Idea, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+ideaCols+` FROM ideas WHERE status = 'active' ORDER BY created DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectIdeas(rows)
}

func (r *SQLiteRepo) ListIdeasByEntrepreneur(ctx context.Context, entrepreneurID string, limit int) ([]models.Idea, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+ideaCols+` FROM ideas WHERE entrepreneur_id = ? ORDER BY created DESC LIMIT ?`, entrepreneurID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectIdeas(rows)
}

func (r *SQLiteRepo) IncrementIdeaViews(ctx context.Context, id string) error {
	_, err := r.conn.Exec(ctx, `UPDATE ideas SET views = views + 1 WHERE id = ?`, id)
	return err
}

func collectIdeas(rows *sql.Rows) ([]models.Idea, error) {
	var out []models.Idea
	for rows.Next() {
		i, err := scanIdea(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *i)
	}
	return out, rows.Err()
}
