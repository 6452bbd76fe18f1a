package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

const profileCols = `id, email, full_name, role, avatar_url, bio, location, phone, verified, rating, created, updated, password_hash`

func scanProfile(row interface{ Scan(...any) error }) (*models.Profile, error) {
	var p models.Profile
	if err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.AvatarURL, &p.Bio, &p.Location, &p.Phone, &p.Verified, &p.Rating, &p.Created, &p.Updated, &p.PasswordHash); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteRepo) CreateProfile(ctx context.Context, p *models.Profile) (string, error) {
	if p == nil {
		return "", fmt.Errorf("profile is nil")
	}

	id := uuid.NewString()
	ts := now()
	_, err := r.conn.Exec(ctx,
		`INSERT INTO profiles (id, email, full_name, role, avatar_url, bio, location, phone, verified, rating, password_hash, created, updated) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Email, p.FullName, p.Role, p.AvatarURL, p.Bio, p.Location, p.Phone, p.Verified, p.Rating, p.PasswordHash, ts, ts)
	if err != nil {
		if isUniqueViolation(err) {
			return "", repository.ErrDuplicate
		}
		return "", err
	}

	p.ID = id
	p.Created = ts
	p.Updated = ts
	return id, nil
}

func (r *SQLiteRepo) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+profileCols+` FROM profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteRepo) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+profileCols+` FROM profiles WHERE email = ?`, email)
	p, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteRepo) UpdateProfile(ctx context.Context, p *models.Profile) error {
	if p == nil {
		return fmt.Errorf("profile is nil")
	}

	_, err := r.conn.Exec(ctx,
		`UPDATE profiles SET full_name = ?, avatar_url = ?, bio = ?, location = ?, phone = ?, verified = ?, rating = ?, updated = ? WHERE id = ?`,
		p.FullName, p.AvatarURL, p.Bio, p.Location, p.Phone, p.Verified, p.Rating, now(), p.ID)
	return err
}

func (r *SQLiteRepo) ListProfilesByRole(ctx context.Context, role models.Role, limit int) ([]models.Profile, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+profileCols+` FROM profiles WHERE role = ? ORDER BY created DESC LIMIT ?`, role, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}

func (r *SQLiteRepo) ListRecentProfiles(ctx context.Context, limit int) ([]models.Profile, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+profileCols+` FROM profiles ORDER BY created DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}

func (r *SQLiteRepo) ListProfilesByIDs(ctx context.Context, ids []string) ([]models.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT `+profileCols+` FROM profiles WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}

func collectProfiles(rows *sql.Rows) ([]models.Profile, error) {
	var out []models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
