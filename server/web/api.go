package web

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mergington/portal/server/database"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", slog.Any("err", err))
	}
}

// respondDetail writes the {"detail": ...} error envelope the signup page
// script expects.
func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// requireTeacher validates the teacher_username query parameter against the
// teachers table. Mutating API endpoints are only available to known staff.
func (h *handler) requireTeacher(ctx context.Context, w http.ResponseWriter, username string) *database.Teacher {
	if username == "" {
		respondDetail(w, http.StatusUnauthorized, "Authentication required")
		return nil
	}

	teacher, err := h.DB.GetTeacher(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondDetail(w, http.StatusUnauthorized, "Authentication required")
			return nil
		}
		slog.ErrorContext(ctx, "failed to get teacher", slog.Any("err", err), slog.String("username", username))
		respondDetail(w, http.StatusInternalServerError, "Internal server error")
		return nil
	}

	return teacher
}
