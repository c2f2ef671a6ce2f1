package web

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/mergington/portal/internal/xio"
	"github.com/mergington/portal/server/auth"
)

type ActivityVars struct {
	Activity Activity
	LoggedIn bool
	User     Teacher
	Error    string
	Message  string
}

func (h *handler) Activity(w http.ResponseWriter, r *http.Request) {
	h.renderActivity(w, r, r.URL.Query().Get("error"), r.URL.Query().Get("message"))
}

func (h *handler) renderActivity(w http.ResponseWriter, r *http.Request, errorMessage string, message string) {
	ctx := r.Context()
	name := r.PathValue("name")

	activity, err := h.DB.GetActivity(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		slog.ErrorContext(ctx, "failed to get activity", slog.Any("err", err), slog.String("activity", name))
		http.Error(w, "Failed to load activity", http.StatusInternalServerError)
		return
	}

	session := auth.GetSession(r)

	if err = h.Templates().ExecuteTemplate(w, "activity.gohtml", ActivityVars{
		Activity: newActivity(*activity),
		LoggedIn: session.ID != "",
		User:     newTeacher(session),
		Error:    errorMessage,
		Message:  message,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render activity template", slog.String("err", err.Error()))
	}
}

// ActivityQR renders a QR code linking to the activity page, for posters and
// handouts.
func (h *handler) ActivityQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	activity, err := h.DB.GetActivity(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		slog.ErrorContext(ctx, "failed to get activity", slog.Any("err", err), slog.String("activity", name))
		http.Error(w, "Failed to load activity", http.StatusInternalServerError)
		return
	}

	qr, err := qrcode.New(h.Cfg.Server.PublicURL + newActivity(*activity).URL)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create qrcode", slog.String("err", err.Error()))
		http.Error(w, "Failed to create qrcode", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")

	qrW := standard.NewWithWriter(xio.NewResponseWriteCloser(w),
		standard.WithBgTransparent(),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)

	defer func() {
		_ = qrW.Close()
	}()
	if err = qr.Save(qrW); err != nil {
		slog.ErrorContext(ctx, "Failed to save qrcode", slog.String("err", err.Error()))
	}
}
