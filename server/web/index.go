package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mergington/portal/internal/tsync"
	"github.com/mergington/portal/internal/xquery"
	"github.com/mergington/portal/server/auth"
	"github.com/mergington/portal/server/catalog"
	"github.com/mergington/portal/server/database"
)

type IndexVars struct {
	Activities    []Activity
	Announcements []Announcement
	Categories    []catalog.Category
	Category      catalog.Category
	Weekend       bool
	Query         string
	Day           string
	StartTime     string
	EndTime       string
	NoResults     bool
	LoggedIn      bool
	User          Teacher
	Error         string
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	filter := catalog.Filter{
		Category:    catalog.Category(xquery.ParseString(query, "category", string(catalog.CategoryAll))),
		WeekendOnly: xquery.ParseBool(query, "weekend", false),
		Query:       xquery.ParseString(query, "q", ""),
	}
	dbFilter := database.ActivityFilter{
		Day:       xquery.ParseString(query, "day", ""),
		StartTime: xquery.ParseClock(query, "start_time", ""),
		EndTime:   xquery.ParseClock(query, "end_time", ""),
	}

	var (
		activities    []database.ActivityWithParticipants
		announcements []database.Announcement
	)

	eg, egCtx := tsync.ErrorGroupWithContext(ctx)
	eg.Go(func() error {
		var err error
		activities, err = h.DB.GetActivities(egCtx, dbFilter)
		return err
	})
	eg.Go(func() error {
		var err error
		announcements, err = h.DB.GetAnnouncements(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		slog.ErrorContext(ctx, "failed to load activities", slog.Any("err", err))
		http.Error(w, "Failed to load activities", http.StatusInternalServerError)
		return
	}

	var all []Activity
	for _, activity := range activities {
		if !filter.Matches(newCatalogActivity(activity)) {
			continue
		}
		all = append(all, newActivity(activity))
	}

	now := time.Now()
	var banner []Announcement
	for _, announcement := range announcements {
		if a := newAnnouncement(announcement, now); a.IsActive {
			banner = append(banner, a)
		}
	}

	session := auth.GetSession(r)

	if err := h.Templates().ExecuteTemplate(w, "index.gohtml", IndexVars{
		Activities:    all,
		Announcements: banner,
		Categories:    catalog.Categories,
		Category:      filter.Category,
		Weekend:       filter.WeekendOnly,
		Query:         filter.Query,
		Day:           dbFilter.Day,
		StartTime:     dbFilter.StartTime,
		EndTime:       dbFilter.EndTime,
		NoResults:     len(all) == 0,
		LoggedIn:      session.ID != "",
		User:          newTeacher(session),
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render index template", slog.String("err", err.Error()))
	}
}
