package web

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mergington/portal/server/auth"
)

type AnnouncementsVars struct {
	Announcements []Announcement
	LoggedIn      bool
	User          Teacher
	Error         string
}

func (h *handler) Announcements(w http.ResponseWriter, r *http.Request) {
	h.renderAnnouncements(w, r, r.URL.Query().Get("error"))
}

func (h *handler) renderAnnouncements(w http.ResponseWriter, r *http.Request, errorMessage string) {
	ctx := r.Context()

	announcements, err := h.DB.GetAnnouncements(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get announcements", slog.Any("err", err))
		http.Error(w, "Failed to load announcements", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	all := make([]Announcement, len(announcements))
	for i, announcement := range announcements {
		all[i] = newAnnouncement(announcement, now)
	}

	if err = h.Templates().ExecuteTemplate(w, "announcements.gohtml", AnnouncementsVars{
		Announcements: all,
		LoggedIn:      true,
		User:          newTeacher(auth.GetSession(r)),
		Error:         errorMessage,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render announcements template", slog.String("err", err.Error()))
	}
}

func (h *handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	announcement, err := parseAnnouncementForm(announcementForm{
		Title:          r.FormValue("title"),
		Message:        r.FormValue("message"),
		StartDate:      r.FormValue("start_date"),
		ExpirationDate: r.FormValue("expiration_date"),
	}, time.Now())
	if err != nil {
		h.redirectAnnouncements(w, r, err.Error())
		return
	}
	announcement.CreatedBy = session.Username

	if _, err = h.DB.InsertAnnouncement(ctx, announcement); err != nil {
		slog.ErrorContext(ctx, "failed to create announcement", slog.Any("err", err))
		h.redirectAnnouncements(w, r, "Failed to create announcement")
		return
	}

	h.SendNotification(ctx, fmt.Sprintf("Announcement **%s** created by `%s`", announcement.Title, session.Username))
	h.redirectAnnouncements(w, r, "")
}

func (h *handler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.redirectAnnouncements(w, r, errInvalidAnnouncement.Error())
		return
	}

	announcement, err := parseAnnouncementForm(announcementForm{
		Title:          r.FormValue("title"),
		Message:        r.FormValue("message"),
		StartDate:      r.FormValue("start_date"),
		ExpirationDate: r.FormValue("expiration_date"),
	}, time.Now())
	if err != nil {
		h.redirectAnnouncements(w, r, err.Error())
		return
	}
	announcement.ID = id
	announcement.UpdatedBy = sql.NullString{String: session.Username, Valid: true}

	found, err := h.DB.UpdateAnnouncement(ctx, announcement)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update announcement", slog.Any("err", err), slog.Int64("id", id))
		h.redirectAnnouncements(w, r, "Failed to update announcement")
		return
	}
	if !found {
		h.redirectAnnouncements(w, r, "Announcement not found")
		return
	}

	h.SendNotification(ctx, fmt.Sprintf("Announcement **%s** updated by `%s`", announcement.Title, session.Username))
	h.redirectAnnouncements(w, r, "")
}

func (h *handler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.redirectAnnouncements(w, r, errInvalidAnnouncement.Error())
		return
	}

	found, err := h.DB.DeleteAnnouncement(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete announcement", slog.Any("err", err), slog.Int64("id", id))
		h.redirectAnnouncements(w, r, "Failed to delete announcement")
		return
	}
	if !found {
		h.redirectAnnouncements(w, r, "Announcement not found")
		return
	}

	h.SendNotification(ctx, fmt.Sprintf("Announcement `%d` deleted by `%s`", id, session.Username))
	h.redirectAnnouncements(w, r, "")
}

func (h *handler) redirectAnnouncements(w http.ResponseWriter, r *http.Request, errorMessage string) {
	target := "/teacher/announcements"
	if errorMessage != "" {
		target += "?error=" + url.QueryEscape(errorMessage)
	}
	http.Redirect(w, r, target, http.StatusFound)
}
