package web

import (
	"fmt"
	"net/url"
	"time"

	"github.com/mergington/portal/server/catalog"
	"github.com/mergington/portal/server/database"
)

func newCatalogActivity(activity database.ActivityWithParticipants) catalog.Activity {
	return catalog.Activity{
		Name:        activity.Name,
		Description: activity.Description,
		Schedule:    activity.Schedule,
		Days:        activity.Days,
		StartTime:   activity.StartTime,
		EndTime:     activity.EndTime,
	}
}

func newActivity(activity database.ActivityWithParticipants) Activity {
	spotsLeft := activity.MaxParticipants - len(activity.Participants)
	if spotsLeft < 0 {
		spotsLeft = 0
	}

	return Activity{
		Name:            activity.Name,
		Description:     activity.Description,
		Schedule:        catalog.FormatSchedule(newCatalogActivity(activity)),
		Category:        catalog.Classify(activity.Name, activity.Description),
		Weekend:         catalog.IsWeekend(activity.Days),
		Participants:    activity.Participants,
		MaxParticipants: activity.MaxParticipants,
		SpotsLeft:       spotsLeft,
		URL:             fmt.Sprintf("/activity/%s", url.PathEscape(activity.Name)),
		QRURL:           fmt.Sprintf("/activity/%s/qr", url.PathEscape(activity.Name)),
	}
}

type Activity struct {
	Name            string
	Description     string
	Schedule        string
	Category        catalog.Category
	Weekend         bool
	Participants    []string
	MaxParticipants int
	SpotsLeft       int
	URL             string
	QRURL           string
}

func newAnnouncement(announcement database.Announcement, now time.Time) Announcement {
	a := Announcement{
		ID:             announcement.ID,
		Title:          announcement.Title,
		Message:        announcement.Message,
		ExpirationDate: announcement.ExpirationDate.Format("2006-01-02"),
		IsActive:       announcementActive(announcement, now),
		CreatedBy:      announcement.CreatedBy,
		CreatedAt:      announcement.CreatedAt,
		URL:            fmt.Sprintf("/teacher/announcements/%d", announcement.ID),
		DeleteURL:      fmt.Sprintf("/teacher/announcements/%d/delete", announcement.ID),
	}
	if announcement.StartDate.Valid {
		a.StartDate = announcement.StartDate.Time.Format("2006-01-02")
	}
	return a
}

type Announcement struct {
	ID             int64
	Title          string
	Message        string
	StartDate      string
	ExpirationDate string
	IsActive       bool
	CreatedBy      string
	CreatedAt      time.Time
	URL            string
	DeleteURL      string
}

// announcementActive reports whether the announcement should be shown on the
// public banner: started (if a start date is set) and not yet expired, by
// calendar date.
func announcementActive(announcement database.Announcement, now time.Time) bool {
	today := now.Truncate(24 * time.Hour)

	if announcement.StartDate.Valid && today.Before(announcement.StartDate.Time.Truncate(24*time.Hour)) {
		return false
	}

	return !today.After(announcement.ExpirationDate.Truncate(24 * time.Hour))
}

func newTeacher(session database.SessionWithTeacher) Teacher {
	return Teacher{
		Username:    session.Username,
		DisplayName: session.DisplayName,
		Role:        session.Role,
	}
}

type Teacher struct {
	Username    string
	DisplayName string
	Role        string
}
