package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

func (r *SQLiteRepo) CreatePost(ctx context.Context, p *models.CommunityPost) (string, error) {
	if p == nil {
		return "", fmt.Errorf("post is nil")
	}

	id := uuid.NewString()
	ts := now()
	_, err := r.conn.Exec(ctx,
		`INSERT INTO community_posts (id, author_id, content, created) VALUES (?, ?, ?, ?)`,
		id, p.AuthorID, p.Content, ts)
	if err != nil {
		return "", err
	}

	p.ID = id
	p.Created = ts
	return id, nil
}

func (r *SQLiteRepo) ListPosts(ctx context.Context, limit int) ([]models.PostWithAuthor, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT p.id, p.author_id, p.content, p.created,
		       pr.full_name, pr.avatar_url, pr.role,
		       (SELECT COUNT(1) FROM post_likes l WHERE l.post_id = p.id) AS likes_count
		FROM community_posts p
		JOIN profiles pr ON pr.id = p.author_id
		ORDER BY p.created DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PostWithAuthor
	for rows.Next() {
		var p models.PostWithAuthor
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Content, &p.Created, &p.AuthorName, &p.AuthorAvatar, &p.AuthorRole, &p.LikesCount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) GetLike(ctx context.Context, postID, userID string) (*models.PostLike, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, post_id, user_id, created FROM post_likes WHERE post_id = ? AND user_id = ?`, postID, userID)
	var l models.PostLike
	if err := row.Scan(&l.ID, &l.PostID, &l.UserID, &l.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *SQLiteRepo) CreateLike(ctx context.Context, l *models.PostLike) (string, error) {
	if l == nil {
		return "", fmt.Errorf("like is nil")
	}

	id := uuid.NewString()
	ts := now()
	_, err := r.conn.Exec(ctx,
		`INSERT INTO post_likes (id, post_id, user_id, created) VALUES (?, ?, ?, ?)`,
		id, l.PostID, l.UserID, ts)
	if err != nil {
		if isUniqueViolation(err) {
			return "", repository.ErrDuplicate
		}
		return "", err
	}

	l.ID = id
	l.Created = ts
	return id, nil
}

func (r *SQLiteRepo) DeleteLike(ctx context.Context, id string) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM post_likes WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepo) CountLikes(ctx context.Context, postID string) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM post_likes WHERE post_id = ?`, postID)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
