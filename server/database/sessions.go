package database

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrSessionExpired = errors.New("session expired")

func (d *Database) GetSession(ctx context.Context, sessionID string) (*SessionWithTeacher, error) {
	query := `
		SELECT s.id, s.username, s.created_at, s.expires_at, t.display_name, t.role
		FROM sessions s
		JOIN teachers t ON s.username = t.username
		WHERE s.id = $1
	`

	var session SessionWithTeacher
	if err := d.db.GetContext(ctx, &session, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.ExpiresAt.Before(time.Now()) {
		return nil, ErrSessionExpired
	}

	return &session, nil
}

func (d *Database) CreateSession(ctx context.Context, session Session) error {
	query := `
		INSERT INTO sessions (id, username, created_at, expires_at)
		VALUES (:id, :username, :created_at, :expires_at)
	`
	if _, err := d.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (d *Database) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = $1", sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (d *Database) DeleteExpiredSessions(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < NOW()"); err != nil {
		return fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}
	return nil
}
