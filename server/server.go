package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mergington/portal/server/auth"
	"github.com/mergington/portal/server/database"
)

var (
	//go:embed static
	static embed.FS

	//go:embed templates/*.gohtml
	templates embed.FS
)

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	"list": func(items ...string) []string {
		return items
	},
	"date": func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	},
	"percent": func(part int, total int) int {
		if total <= 0 {
			return 0
		}
		return part * 100 / total
	},
}

func New(cfg Config) (*Server, error) {
	funcs := template.FuncMap{
		"dev": func() bool {
			return cfg.Dev
		},
	}
	for name, f := range templateFuncs {
		funcs[name] = f
	}

	var staticFS http.FileSystem
	var t func() *template.Template
	if cfg.Dev {
		root, err := os.OpenRoot("server/")
		if err != nil {
			return nil, fmt.Errorf("failed to open static directory: %w", err)
		}
		staticFS = http.FS(root.FS())
		t = func() *template.Template {
			return template.Must(template.New("templates").
				Funcs(funcs).
				ParseFS(root.FS(), "templates/*.gohtml"))
		}
	} else {
		staticFS = http.FS(static)

		st := template.Must(template.New("templates").
			Funcs(funcs).
			ParseFS(templates, "templates/*.gohtml"),
		)

		t = func() *template.Template {
			return st
		}
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	s := &Server{
		Cfg:        cfg,
		DB:         db,
		Auth:       auth.New(cfg.Auth, db),
		HttpClient: httpClient,
		StaticFS:   staticFS,
		Templates:  t,
		Reloader:   newReloader(cfg.Dev),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = s.Auth.EnsureTeachers(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed teacher accounts: %w", err)
	}

	if cfg.Dev {
		s.stopDevWatcher = startDevWatcher("server/", s.Reloader)
	}

	go s.cleanupAnnouncements()

	return s, nil
}

type Server struct {
	Cfg        Config
	DB         *database.Database
	Auth       *auth.Auth
	HttpClient *http.Client
	StaticFS   http.FileSystem
	Templates  func() *template.Template
	Reloader   *Reloader

	server         *http.Server
	stopDevWatcher context.CancelFunc
}

func (s *Server) Start(handler http.Handler) {
	s.server = &http.Server{
		Addr:    s.Cfg.Server.Addr,
		Handler: handler,
	}
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", slog.Any("err", err))
		}
	}()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.stopDevWatcher != nil {
		s.stopDevWatcher()
	}
	s.Reloader.Close()

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", slog.Any("err", err))
	}

	if err := s.DB.Close(); err != nil {
		slog.Error("Failed to close database", slog.Any("err", err))
	}
}
