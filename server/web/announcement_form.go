package web

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/mergington/portal/server/database"
)

var (
	errAnnouncementFields  = errors.New("Title, message, and expiration_date are required")
	errInvalidDate         = errors.New("Invalid date format. Use YYYY-MM-DD")
	errStartAfterExpiry    = errors.New("Start date cannot be after expiration date")
	errExpirationInPast    = errors.New("Expiration date cannot be in the past")
	errInvalidAnnouncement = errors.New("Invalid announcement ID")
)

type announcementForm struct {
	Title          string
	Message        string
	StartDate      string
	ExpirationDate string
}

// parseAnnouncementForm validates an announcement submission before anything
// is written to the store: required fields, date format, start before
// expiration, and expiration not in the past.
func parseAnnouncementForm(form announcementForm, now time.Time) (database.Announcement, error) {
	title := strings.TrimSpace(form.Title)
	message := strings.TrimSpace(form.Message)

	if title == "" || message == "" || form.ExpirationDate == "" {
		return database.Announcement{}, errAnnouncementFields
	}

	expiration, err := time.Parse("2006-01-02", form.ExpirationDate)
	if err != nil {
		return database.Announcement{}, errInvalidDate
	}

	var start sql.NullTime
	if form.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", form.StartDate)
		if err != nil {
			return database.Announcement{}, errInvalidDate
		}
		if startDate.After(expiration) {
			return database.Announcement{}, errStartAfterExpiry
		}
		start = sql.NullTime{Time: startDate, Valid: true}
	}

	if expiration.Before(now.UTC().Truncate(24 * time.Hour)) {
		return database.Announcement{}, errExpirationInPast
	}

	return database.Announcement{
		Title:          title,
		Message:        message,
		StartDate:      start,
		ExpirationDate: expiration,
	}, nil
}
