package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	ErrActivityFull    = errors.New("activity is full")
	ErrAlreadySignedUp = errors.New("student is already signed up")
	ErrNotSignedUp     = errors.New("student is not signed up")
)

// ActivityFilter narrows the catalog query. Empty fields match everything.
// Times are zero-padded 24h "HH:MM" strings, so plain string comparison
// matches chronological order.
type ActivityFilter struct {
	Day       string
	StartTime string
	EndTime   string
}

func (d *Database) GetActivities(ctx context.Context, filter ActivityFilter) ([]ActivityWithParticipants, error) {
	query := `
		SELECT * FROM activities
		WHERE ($1 = '' OR $1 = ANY(days))
		AND ($2 = '' OR start_time >= $2)
		AND ($3 = '' OR end_time <= $3)
		ORDER BY name
	`

	var activities []Activity
	if err := d.db.SelectContext(ctx, &activities, query, filter.Day, filter.StartTime, filter.EndTime); err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}

	var participants []Participant
	if err := d.db.SelectContext(ctx, &participants, "SELECT * FROM participants ORDER BY registered_at, email"); err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	byActivity := make(map[string][]string, len(activities))
	for _, p := range participants {
		byActivity[p.ActivityName] = append(byActivity[p.ActivityName], p.Email)
	}

	result := make([]ActivityWithParticipants, len(activities))
	for i, activity := range activities {
		result[i] = ActivityWithParticipants{
			Activity:     activity,
			Participants: byActivity[activity.Name],
		}
	}

	return result, nil
}

func (d *Database) GetActivity(ctx context.Context, name string) (*ActivityWithParticipants, error) {
	var activity Activity
	if err := d.db.GetContext(ctx, &activity, "SELECT * FROM activities WHERE name = $1", name); err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	var emails []string
	if err := d.db.SelectContext(ctx, &emails, "SELECT email FROM participants WHERE activity_name = $1 ORDER BY registered_at, email", name); err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	return &ActivityWithParticipants{
		Activity:     activity,
		Participants: emails,
	}, nil
}

// SignUp registers a student for an activity. The activity row is locked for
// the duration of the transaction so concurrent signups cannot overshoot
// max_participants.
func (d *Database) SignUp(ctx context.Context, activityName string, email string) error {
	return d.inTx(ctx, func(tx *sqlx.Tx) error {
		var activity Activity
		if err := tx.GetContext(ctx, &activity, "SELECT * FROM activities WHERE name = $1 FOR UPDATE", activityName); err != nil {
			return fmt.Errorf("failed to get activity: %w", err)
		}

		var count int
		if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM participants WHERE activity_name = $1", activityName); err != nil {
			return fmt.Errorf("failed to count participants: %w", err)
		}
		if count >= activity.MaxParticipants {
			return ErrActivityFull
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO participants (activity_name, email)
			VALUES ($1, $2)
			ON CONFLICT (activity_name, email) DO NOTHING
		`, activityName, email)
		if err != nil {
			return fmt.Errorf("failed to sign up: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return ErrAlreadySignedUp
		}

		return nil
	})
}

func (d *Database) Unregister(ctx context.Context, activityName string, email string) error {
	return d.inTx(ctx, func(tx *sqlx.Tx) error {
		var activity Activity
		if err := tx.GetContext(ctx, &activity, "SELECT * FROM activities WHERE name = $1 FOR UPDATE", activityName); err != nil {
			return fmt.Errorf("failed to get activity: %w", err)
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM participants WHERE activity_name = $1 AND email = $2", activityName, email)
		if err != nil {
			return fmt.Errorf("failed to unregister: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return ErrNotSignedUp
		}

		return nil
	})
}

func (d *Database) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
