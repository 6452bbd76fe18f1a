package sqlite

import (
	"context"

	"github.com/projexi/projexi/pkg/models"
)

func (r *SQLiteRepo) CountProfiles(ctx context.Context, role models.Role) (int64, error) {
	if role == "" {
		return r.countTable(ctx, `SELECT COUNT(1) FROM profiles`)
	}
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM profiles WHERE role = ?`, role)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SQLiteRepo) CountIdeas(ctx context.Context) (int64, error) {
	return r.countTable(ctx, `SELECT COUNT(1) FROM ideas`)
}

func (r *SQLiteRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.countTable(ctx, `SELECT COUNT(1) FROM products`)
}

func (r *SQLiteRepo) CountInvestments(ctx context.Context) (int64, error) {
	return r.countTable(ctx, `SELECT COUNT(1) FROM investments`)
}

func (r *SQLiteRepo) CountMessages(ctx context.Context) (int64, error) {
	return r.countTable(ctx, `SELECT COUNT(1) FROM messages`)
}

func (r *SQLiteRepo) CountEvents(ctx context.Context) (int64, error) {
	return r.countTable(ctx, `SELECT COUNT(1) FROM events`)
}

func (r *SQLiteRepo) CountPosts(ctx context.Context) (int64, error) {
	return r.countTable(ctx, `SELECT COUNT(1) FROM community_posts`)
}

func (r *SQLiteRepo) countTable(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.conn.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
