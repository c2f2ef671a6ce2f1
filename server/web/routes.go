package web

import (
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/mergington/portal/internal/middlewares"
	"github.com/mergington/portal/server"
)

type handler struct {
	*server.Server
}

func Routes(srv *server.Server) http.Handler {
	h := &handler{
		Server: srv,
	}

	fs := srv.Reloader.CacheMiddleware(http.FileServer(h.StaticFS))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Index)

	mux.HandleFunc("GET /login", h.Login)
	mux.HandleFunc("POST /login", h.DoLogin)
	mux.HandleFunc("POST /logout", h.Logout)

	mux.HandleFunc("GET  /activity/{name}", h.Activity)
	mux.Handle("GET  /activity/{name}/qr", middlewares.Cache(http.HandlerFunc(h.ActivityQR)))
	mux.HandleFunc("POST /activity/{name}/signup", h.SignUp)
	mux.HandleFunc("POST /activity/{name}/unregister", h.Unregister)

	mux.HandleFunc("GET  /teacher/announcements", h.Announcements)
	mux.HandleFunc("POST /teacher/announcements", h.CreateAnnouncement)
	mux.HandleFunc("POST /teacher/announcements/{id}", h.UpdateAnnouncement)
	mux.HandleFunc("POST /teacher/announcements/{id}/delete", h.DeleteAnnouncement)

	// JSON API consumed by the signup page script and external clients.
	mux.HandleFunc("GET  /activities", h.APIActivities)
	mux.HandleFunc("POST /activities/{name}/signup", h.APISignUp)
	mux.HandleFunc("POST /activities/{name}/unregister", h.APIUnregister)

	mux.HandleFunc("POST /auth/login", h.APILogin)
	mux.HandleFunc("GET  /auth/check-session", h.APICheckSession)

	mux.HandleFunc("GET    /announcements", h.APIAnnouncements)
	mux.HandleFunc("GET    /announcements/manage", h.APIManageAnnouncements)
	mux.HandleFunc("POST   /announcements", h.APICreateAnnouncement)
	mux.HandleFunc("PUT    /announcements/{id}", h.APIUpdateAnnouncement)
	mux.HandleFunc("DELETE /announcements/{id}", h.APIDeleteAnnouncement)

	mux.Handle("GET  /static/", fs)
	mux.Handle("HEAD /static/", fs)

	mux.Handle(server.ReloadRoute, srv.Reloader.Handler())

	mux.HandleFunc("/", h.NotFound)

	return cleanPath(requestLogger(h.auth(mux)))
}

func (h *handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.WriteHeader(http.StatusNotFound)
	if err := h.Templates().ExecuteTemplate(w, "not_found.gohtml", nil); err != nil {
		slog.ErrorContext(ctx, "Failed to render not found template", slog.String("err", err.Error()))
	}
}

func cleanPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = path.Clean(r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.DebugContext(r.Context(), "Request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	})
}
