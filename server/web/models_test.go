package web

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mergington/portal/server/catalog"
	"github.com/mergington/portal/server/database"
)

func TestAnnouncementActive(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	date := func(value string) time.Time {
		d, err := time.Parse("2006-01-02", value)
		if err != nil {
			t.Fatalf("bad date %q: %s", value, err)
		}
		return d
	}

	cases := []struct {
		name         string
		announcement database.Announcement
		expected     bool
	}{
		{
			"no start, future expiration",
			database.Announcement{ExpirationDate: date("2026-03-20")},
			true,
		},
		{
			"expires today",
			database.Announcement{ExpirationDate: date("2026-03-10")},
			true,
		},
		{
			"expired yesterday",
			database.Announcement{ExpirationDate: date("2026-03-09")},
			false,
		},
		{
			"starts today",
			database.Announcement{
				StartDate:      sql.NullTime{Time: date("2026-03-10"), Valid: true},
				ExpirationDate: date("2026-03-20"),
			},
			true,
		},
		{
			"starts tomorrow",
			database.Announcement{
				StartDate:      sql.NullTime{Time: date("2026-03-11"), Valid: true},
				ExpirationDate: date("2026-03-20"),
			},
			false,
		},
		{
			"started last week",
			database.Announcement{
				StartDate:      sql.NullTime{Time: date("2026-03-03"), Valid: true},
				ExpirationDate: date("2026-03-20"),
			},
			true,
		},
	}
	for _, c := range cases {
		if got := announcementActive(c.announcement, now); got != c.expected {
			t.Fatalf("%s: expected %t, got %t", c.name, c.expected, got)
		}
	}
}

func TestNewActivity(t *testing.T) {
	activity := newActivity(database.ActivityWithParticipants{
		Activity: database.Activity{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in tournaments",
			Days:            []string{"Monday", "Friday"},
			StartTime:       "15:15",
			EndTime:         "16:45",
			MaxParticipants: 12,
		},
		Participants: []string{"michael@mergington.edu", "daniel@mergington.edu"},
	})

	if activity.Schedule != "Mondays and Fridays, 3:15 PM - 4:45 PM" {
		t.Fatalf("unexpected schedule: %q", activity.Schedule)
	}
	if activity.Category != catalog.CategoryAcademic {
		t.Fatalf("unexpected category: %s", activity.Category)
	}
	if activity.Weekend {
		t.Fatal("weekday activity flagged as weekend")
	}
	if activity.SpotsLeft != 10 {
		t.Fatalf("expected 10 spots left, got %d", activity.SpotsLeft)
	}
	if activity.URL != "/activity/Chess%20Club" {
		t.Fatalf("unexpected URL: %q", activity.URL)
	}
	if activity.QRURL != "/activity/Chess%20Club/qr" {
		t.Fatalf("unexpected QR URL: %q", activity.QRURL)
	}
}

func TestNewActivitySpotsLeftClamped(t *testing.T) {
	activity := newActivity(database.ActivityWithParticipants{
		Activity: database.Activity{
			Name:            "Art Club",
			MaxParticipants: 1,
		},
		Participants: []string{"a@mergington.edu", "b@mergington.edu"},
	})
	if activity.SpotsLeft != 0 {
		t.Fatalf("expected 0 spots left, got %d", activity.SpotsLeft)
	}
}
