package web

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/mergington/portal/server/auth"
	"github.com/mergington/portal/server/database"
)

var errInvalidEmail = errors.New("Invalid email address")

// registerStudent runs a signup or unregister mutation and maps store errors
// to user-facing messages with the right status code.
func (h *handler) registerStudent(ctx context.Context, activityName string, email string, signUp bool) (int, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return http.StatusBadRequest, errInvalidEmail
	}

	var err error
	if signUp {
		err = h.DB.SignUp(ctx, activityName, email)
	} else {
		err = h.DB.Unregister(ctx, activityName, email)
	}
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return http.StatusNotFound, errors.New("Activity not found")
	case errors.Is(err, database.ErrActivityFull):
		return http.StatusBadRequest, errors.New("Activity is full")
	case errors.Is(err, database.ErrAlreadySignedUp):
		return http.StatusBadRequest, errors.New("Student is already signed up")
	case errors.Is(err, database.ErrNotSignedUp):
		return http.StatusBadRequest, errors.New("Student is not signed up for this activity")
	default:
		slog.ErrorContext(ctx, "failed to update registration", slog.Any("err", err), slog.String("activity", activityName))
		return http.StatusInternalServerError, errors.New("Failed to update registration")
	}
}

func (h *handler) SignUp(w http.ResponseWriter, r *http.Request) {
	h.doRegisterForm(w, r, true)
}

func (h *handler) Unregister(w http.ResponseWriter, r *http.Request) {
	h.doRegisterForm(w, r, false)
}

func (h *handler) doRegisterForm(w http.ResponseWriter, r *http.Request, signUp bool) {
	ctx := r.Context()
	name := r.PathValue("name")
	email := r.FormValue("email")

	session := auth.GetSession(r)
	if session.ID == "" {
		h.forceLogin(w, r)
		return
	}

	activityURL := fmt.Sprintf("/activity/%s", url.PathEscape(name))

	if _, err := h.registerStudent(ctx, name, email, signUp); err != nil {
		http.Redirect(w, r, activityURL+"?error="+url.QueryEscape(err.Error()), http.StatusFound)
		return
	}

	var message string
	if signUp {
		message = fmt.Sprintf("Signed up %s for %s", email, name)
	} else {
		message = fmt.Sprintf("Unregistered %s from %s", email, name)
	}

	http.Redirect(w, r, activityURL+"?message="+url.QueryEscape(message), http.StatusFound)
}
