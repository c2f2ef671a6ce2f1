package web

import (
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mergington/portal/server/auth"
	"github.com/mergington/portal/server/database"
)

func (h *handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var session *database.SessionWithTeacher
		for _, cookie := range r.CookiesNamed("session") {
			var err error
			session, err = h.DB.GetSession(ctx, cookie.Value)
			if err != nil {
				if !errors.Is(err, sql.ErrNoRows) && !errors.Is(err, database.ErrSessionExpired) {
					slog.ErrorContext(ctx, "failed to get session from database", slog.Any("err", err), slog.String("session_id", cookie.Value))
				}
				continue
			}
			break
		}

		if session == nil {
			if strings.HasPrefix(r.URL.Path, "/teacher") {
				h.forceLogin(w, r)
				return
			}
			session = &database.SessionWithTeacher{}
		}

		r = r.WithContext(auth.SetSession(ctx, *session))
		next.ServeHTTP(w, r)
	})
}

func (h *handler) forceLogin(w http.ResponseWriter, r *http.Request) {
	u := url.URL{
		Path:     "/login",
		RawQuery: url.Values{"rd": {r.URL.Path}}.Encode(),
	}
	http.Redirect(w, r, u.String(), http.StatusFound)
}

type LoginVars struct {
	Redirect string
	Error    string
}

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, r.URL.Query().Get("rd"), "")
}

func (h *handler) renderLogin(w http.ResponseWriter, r *http.Request, redirect string, errorMessage string) {
	ctx := r.Context()

	if redirect == "" {
		redirect = "/"
	}

	if err := h.Templates().ExecuteTemplate(w, "login.gohtml", LoginVars{
		Redirect: redirect,
		Error:    errorMessage,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render login template", slog.String("err", err.Error()))
	}
}

func (h *handler) DoLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	redirect := r.FormValue("rd")

	if !h.Auth.AllowLogin(remoteAddr(r)) {
		h.renderLogin(w, r, redirect, "Too many login attempts. Please wait a moment and try again.")
		return
	}

	teacher, err := h.Auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.renderLogin(w, r, redirect, "Invalid username or password")
			return
		}
		slog.ErrorContext(ctx, "failed to log in", slog.Any("err", err))
		h.renderLogin(w, r, redirect, "Login failed. Please try again.")
		return
	}

	session, err := h.Auth.NewSession(ctx, teacher.Username)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create session", slog.Any("err", err))
		h.renderLogin(w, r, redirect, "Login failed. Please try again.")
		return
	}

	addSessionCookie(w, session.ID, session.ExpiresAt)

	if redirect == "" || !strings.HasPrefix(redirect, "/") {
		redirect = "/"
	}
	http.Redirect(w, r, redirect, http.StatusFound)
}

func (h *handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session := auth.GetSession(r)
	if session.ID != "" {
		if err := h.DB.DeleteSession(ctx, session.ID); err != nil {
			slog.ErrorContext(ctx, "failed to delete session", slog.Any("err", err))
		}
	}

	removeSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func addSessionCookie(w http.ResponseWriter, session string, expiration time.Time) {
	cookie := http.Cookie{
		Name:     "session",
		Value:    session,
		Expires:  expiration,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // Can use via http reqs
		HttpOnly: true,  // Can't be accessed by JS
		Path:     "/",
	}

	http.SetCookie(w, &cookie)
}

func removeSessionCookie(w http.ResponseWriter) {
	cookie := http.Cookie{
		Name:     "session",
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
		HttpOnly: true,
		Path:     "/",
	}

	http.SetCookie(w, &cookie)
}

func remoteAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
