package web

import (
	"errors"
	"testing"
	"time"
)

var formNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestParseAnnouncementForm(t *testing.T) {
	announcement, err := parseAnnouncementForm(announcementForm{
		Title:          "  Spring Fair  ",
		Message:        "Sign up by Friday",
		StartDate:      "2026-03-12",
		ExpirationDate: "2026-03-20",
	}, formNow)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if announcement.Title != "Spring Fair" {
		t.Fatalf("title not trimmed: %q", announcement.Title)
	}
	if !announcement.StartDate.Valid || announcement.StartDate.Time.Format("2006-01-02") != "2026-03-12" {
		t.Fatalf("unexpected start date: %v", announcement.StartDate)
	}
	if announcement.ExpirationDate.Format("2006-01-02") != "2026-03-20" {
		t.Fatalf("unexpected expiration date: %v", announcement.ExpirationDate)
	}
}

func TestParseAnnouncementFormOptionalStart(t *testing.T) {
	announcement, err := parseAnnouncementForm(announcementForm{
		Title:          "Picture Day",
		Message:        "Wear your uniform",
		ExpirationDate: "2026-03-20",
	}, formNow)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if announcement.StartDate.Valid {
		t.Fatal("start date should be empty")
	}
}

func TestParseAnnouncementFormErrors(t *testing.T) {
	cases := []struct {
		name     string
		form     announcementForm
		expected error
	}{
		{
			"missing title",
			announcementForm{Message: "msg", ExpirationDate: "2026-03-20"},
			errAnnouncementFields,
		},
		{
			"whitespace title",
			announcementForm{Title: "   ", Message: "msg", ExpirationDate: "2026-03-20"},
			errAnnouncementFields,
		},
		{
			"missing message",
			announcementForm{Title: "title", ExpirationDate: "2026-03-20"},
			errAnnouncementFields,
		},
		{
			"missing expiration",
			announcementForm{Title: "title", Message: "msg"},
			errAnnouncementFields,
		},
		{
			"bad expiration format",
			announcementForm{Title: "title", Message: "msg", ExpirationDate: "03/20/2026"},
			errInvalidDate,
		},
		{
			"bad start format",
			announcementForm{Title: "title", Message: "msg", StartDate: "next week", ExpirationDate: "2026-03-20"},
			errInvalidDate,
		},
		{
			"start after expiration",
			announcementForm{Title: "title", Message: "msg", StartDate: "2026-03-25", ExpirationDate: "2026-03-20"},
			errStartAfterExpiry,
		},
		{
			"expiration in the past",
			announcementForm{Title: "title", Message: "msg", ExpirationDate: "2026-03-01"},
			errExpirationInPast,
		},
	}
	for _, c := range cases {
		if _, err := parseAnnouncementForm(c.form, formNow); !errors.Is(err, c.expected) {
			t.Fatalf("%s: expected %q, got %v", c.name, c.expected, err)
		}
	}
}

func TestParseAnnouncementFormExpirationToday(t *testing.T) {
	if _, err := parseAnnouncementForm(announcementForm{
		Title:          "Last call",
		Message:        "Ends today",
		ExpirationDate: "2026-03-10",
	}, formNow); err != nil {
		t.Fatalf("expiring today should be allowed: %s", err)
	}
}
