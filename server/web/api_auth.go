package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mergington/portal/server/auth"
	"github.com/mergington/portal/server/database"
)

type teacherJSON struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func newTeacherJSON(teacher database.Teacher) teacherJSON {
	return teacherJSON{
		Username:    teacher.Username,
		DisplayName: teacher.DisplayName,
		Role:        teacher.Role,
	}
}

// APILogin exchanges credentials for the session object the browser client
// persists locally.
func (h *handler) APILogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	if !h.Auth.AllowLogin(remoteAddr(r)) {
		respondDetail(w, http.StatusTooManyRequests, "Too many login attempts")
		return
	}

	teacher, err := h.Auth.Login(ctx, query.Get("username"), query.Get("password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondDetail(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		slog.ErrorContext(ctx, "failed to log in", slog.Any("err", err))
		respondDetail(w, http.StatusInternalServerError, "Login failed")
		return
	}

	respondJSON(w, http.StatusOK, newTeacherJSON(*teacher))
}

// APICheckSession revalidates a persisted identity. A rejection tells the
// client to discard its stored session object.
func (h *handler) APICheckSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	teacher, err := h.Auth.CheckSession(ctx, r.URL.Query().Get("username"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondDetail(w, http.StatusNotFound, "Teacher not found")
			return
		}
		slog.ErrorContext(ctx, "failed to check session", slog.Any("err", err))
		respondDetail(w, http.StatusInternalServerError, "Session check failed")
		return
	}

	respondJSON(w, http.StatusOK, newTeacherJSON(*teacher))
}
