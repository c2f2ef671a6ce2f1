package database

import (
	"context"
	"fmt"
)

func (d *Database) GetTeacher(ctx context.Context, username string) (*Teacher, error) {
	var teacher Teacher
	if err := d.db.GetContext(ctx, &teacher, "SELECT * FROM teachers WHERE username = $1", username); err != nil {
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}

	return &teacher, nil
}

// InsertTeacher creates a teacher account if the username is not taken yet.
// Existing accounts are left untouched so password changes survive restarts.
func (d *Database) InsertTeacher(ctx context.Context, teacher Teacher) error {
	query := `
		INSERT INTO teachers (username, display_name, role, password_hash)
		VALUES (:username, :display_name, :role, :password_hash)
		ON CONFLICT (username) DO NOTHING
	`
	if _, err := d.db.NamedExecContext(ctx, query, teacher); err != nil {
		return fmt.Errorf("failed to insert teacher: %w", err)
	}

	return nil
}
