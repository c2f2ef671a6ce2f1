package web

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mergington/portal/server/database"
)

type announcementJSON struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	StartDate      string `json:"start_date,omitempty"`
	ExpirationDate string `json:"expiration_date"`
	CreatedBy      string `json:"created_by"`
	CreatedAt      string `json:"created_at"`
	UpdatedBy      string `json:"updated_by,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

func newAnnouncementJSON(announcement database.Announcement) announcementJSON {
	a := announcementJSON{
		ID:             announcement.ID,
		Title:          announcement.Title,
		Message:        announcement.Message,
		ExpirationDate: announcement.ExpirationDate.Format("2006-01-02"),
		CreatedBy:      announcement.CreatedBy,
		CreatedAt:      announcement.CreatedAt.UTC().Format(time.RFC3339),
	}
	if announcement.StartDate.Valid {
		a.StartDate = announcement.StartDate.Time.Format("2006-01-02")
	}
	if announcement.UpdatedBy.Valid {
		a.UpdatedBy = announcement.UpdatedBy.String
	}
	if announcement.UpdatedAt.Valid {
		a.UpdatedAt = announcement.UpdatedAt.Time.UTC().Format(time.RFC3339)
	}
	return a
}

// APIAnnouncements is the public banner feed: active announcements only,
// newest first.
func (h *handler) APIAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	announcements, err := h.DB.GetAnnouncements(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get announcements", slog.Any("err", err))
		respondDetail(w, http.StatusInternalServerError, "Failed to fetch announcements")
		return
	}

	now := time.Now()
	active := make([]announcementJSON, 0, len(announcements))
	for _, announcement := range announcements {
		if !announcementActive(announcement, now) {
			continue
		}
		active = append(active, newAnnouncementJSON(announcement))
	}

	respondJSON(w, http.StatusOK, active)
}

// APIManageAnnouncements returns every announcement with its computed active
// state, for the staff management view.
func (h *handler) APIManageAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.requireTeacher(ctx, w, r.URL.Query().Get("teacher_username")) == nil {
		return
	}

	announcements, err := h.DB.GetAnnouncements(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get announcements", slog.Any("err", err))
		respondDetail(w, http.StatusInternalServerError, "Failed to fetch announcements")
		return
	}

	now := time.Now()
	all := make([]announcementJSON, len(announcements))
	for i, announcement := range announcements {
		a := newAnnouncementJSON(announcement)
		active := announcementActive(announcement, now)
		a.IsActive = &active
		all[i] = a
	}

	respondJSON(w, http.StatusOK, all)
}

func (h *handler) APICreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	teacher := h.requireTeacher(ctx, w, query.Get("teacher_username"))
	if teacher == nil {
		return
	}

	announcement, err := parseAnnouncementForm(announcementForm{
		Title:          query.Get("title"),
		Message:        query.Get("message"),
		StartDate:      query.Get("start_date"),
		ExpirationDate: query.Get("expiration_date"),
	}, time.Now())
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	announcement.CreatedBy = teacher.Username

	id, err := h.DB.InsertAnnouncement(ctx, announcement)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create announcement", slog.Any("err", err))
		respondDetail(w, http.StatusInternalServerError, "Failed to create announcement")
		return
	}

	created, err := h.DB.GetAnnouncement(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get created announcement", slog.Any("err", err), slog.Int64("id", id))
		respondDetail(w, http.StatusInternalServerError, "Failed to create announcement")
		return
	}

	h.SendNotification(ctx, fmt.Sprintf("Announcement **%s** created by `%s`", announcement.Title, teacher.Username))

	respondJSON(w, http.StatusOK, map[string]any{
		"message":      "Announcement created successfully",
		"announcement": newAnnouncementJSON(*created),
	})
}

func (h *handler) APIUpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	teacher := h.requireTeacher(ctx, w, query.Get("teacher_username"))
	if teacher == nil {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, errInvalidAnnouncement.Error())
		return
	}

	announcement, err := parseAnnouncementForm(announcementForm{
		Title:          query.Get("title"),
		Message:        query.Get("message"),
		StartDate:      query.Get("start_date"),
		ExpirationDate: query.Get("expiration_date"),
	}, time.Now())
	if err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	announcement.ID = id
	announcement.UpdatedBy = sql.NullString{String: teacher.Username, Valid: true}

	found, err := h.DB.UpdateAnnouncement(ctx, announcement)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update announcement", slog.Any("err", err), slog.Int64("id", id))
		respondDetail(w, http.StatusInternalServerError, "Failed to update announcement")
		return
	}
	if !found {
		respondDetail(w, http.StatusNotFound, "Announcement not found")
		return
	}

	h.SendNotification(ctx, fmt.Sprintf("Announcement **%s** updated by `%s`", announcement.Title, teacher.Username))

	respondJSON(w, http.StatusOK, map[string]string{"message": "Announcement updated successfully"})
}

func (h *handler) APIDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	teacher := h.requireTeacher(ctx, w, r.URL.Query().Get("teacher_username"))
	if teacher == nil {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, errInvalidAnnouncement.Error())
		return
	}

	found, err := h.DB.DeleteAnnouncement(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete announcement", slog.Any("err", err), slog.Int64("id", id))
		respondDetail(w, http.StatusInternalServerError, "Failed to delete announcement")
		return
	}
	if !found {
		respondDetail(w, http.StatusNotFound, "Announcement not found")
		return
	}

	h.SendNotification(ctx, fmt.Sprintf("Announcement `%d` deleted by `%s`", id, teacher.Username))

	respondJSON(w, http.StatusOK, map[string]string{"message": "Announcement deleted successfully"})
}
