package database

import (
	"context"
	"fmt"
	"time"
)

func (d *Database) GetAnnouncements(ctx context.Context) ([]Announcement, error) {
	var announcements []Announcement
	if err := d.db.SelectContext(ctx, &announcements, "SELECT * FROM announcements ORDER BY created_at DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("failed to get announcements: %w", err)
	}

	return announcements, nil
}

func (d *Database) GetAnnouncement(ctx context.Context, id int64) (*Announcement, error) {
	var announcement Announcement
	if err := d.db.GetContext(ctx, &announcement, "SELECT * FROM announcements WHERE id = $1", id); err != nil {
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}

	return &announcement, nil
}

func (d *Database) InsertAnnouncement(ctx context.Context, announcement Announcement) (int64, error) {
	query := `
		INSERT INTO announcements (title, message, start_date, expiration_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`

	var id int64
	if err := d.db.GetContext(ctx, &id, query,
		announcement.Title,
		announcement.Message,
		announcement.StartDate,
		announcement.ExpirationDate,
		announcement.CreatedBy,
	); err != nil {
		return 0, fmt.Errorf("failed to insert announcement: %w", err)
	}

	return id, nil
}

func (d *Database) UpdateAnnouncement(ctx context.Context, announcement Announcement) (bool, error) {
	query := `
		UPDATE announcements
		SET title = $2,
			message = $3,
			start_date = $4,
			expiration_date = $5,
			updated_by = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	res, err := d.db.ExecContext(ctx, query,
		announcement.ID,
		announcement.Title,
		announcement.Message,
		announcement.StartDate,
		announcement.ExpirationDate,
		announcement.UpdatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update announcement: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}

func (d *Database) DeleteAnnouncement(ctx context.Context, id int64) (bool, error) {
	res, err := d.db.ExecContext(ctx, "DELETE FROM announcements WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete announcement: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}

func (d *Database) DeleteAnnouncementsExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := d.db.ExecContext(ctx, "DELETE FROM announcements WHERE expiration_date < $1", before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired announcements: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}
