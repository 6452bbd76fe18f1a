package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

func (r *SQLiteRepo) CreateEvent(ctx context.Context, e *models.Event) (string, error) {
	if e == nil {
		return "", fmt.Errorf("event is nil")
	}

	id := uuid.NewString()
	ts := now()
	_, err := r.conn.Exec(ctx,
		`INSERT INTO events (id, organizer_id, title, description, event_type, event_date, duration_minutes, max_participants, registration_url, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, e.OrganizerID, e.Title, e.Description, e.EventType, e.EventDate, e.DurationMinutes, e.MaxParticipants, e.RegistrationURL, ts)
	if err != nil {
		return "", err
	}

	e.ID = id
	e.Created = ts
	return id, nil
}

func (r *SQLiteRepo) ListUpcomingEvents(ctx context.Context, eventType string, since int64) ([]models.EventWithOrganizer, error) {
	query := `
		SELECT e.id, e.organizer_id, e.title, e.description, e.event_type, e.event_date, e.duration_minutes, e.max_participants, e.registration_url, e.created,
		       pr.full_name, pr.avatar_url
		FROM events e
		JOIN profiles pr ON pr.id = e.organizer_id
		WHERE e.event_date >= ?`
	args := []any{since}
	if eventType != "" {
		query += ` AND e.event_type = ?`
		args = append(args, eventType)
	}
	query += ` ORDER BY e.event_date ASC`

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.EventWithOrganizer
	for rows.Next() {
		var e models.EventWithOrganizer
		if err := rows.Scan(&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.EventType, &e.EventDate, &e.DurationMinutes, &e.MaxParticipants, &e.RegistrationURL, &e.Created, &e.OrganizerName, &e.OrganizerAvatar); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) CreateRegistration(ctx context.Context, reg *models.EventRegistration) (string, error) {
	if reg == nil {
		return "", fmt.Errorf("registration is nil")
	}

	id := uuid.NewString()
	ts := now()
	_, err := r.conn.Exec(ctx,
		`INSERT INTO event_registrations (id, event_id, user_id, created) VALUES (?, ?, ?, ?)`,
		id, reg.EventID, reg.UserID, ts)
	if err != nil {
		if isUniqueViolation(err) {
			return "", repository.ErrDuplicate
		}
		return "", err
	}

	reg.ID = id
	reg.Created = ts
	return id, nil
}
