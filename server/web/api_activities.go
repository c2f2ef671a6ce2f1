package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mergington/portal/internal/xquery"
	"github.com/mergington/portal/server/database"
)

type activityJSON struct {
	Description     string              `json:"description"`
	Schedule        string              `json:"schedule"`
	ScheduleDetails scheduleDetailsJSON `json:"schedule_details"`
	MaxParticipants int                 `json:"max_participants"`
	Participants    []string            `json:"participants"`
}

type scheduleDetailsJSON struct {
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
}

func newActivityJSON(activity database.ActivityWithParticipants) activityJSON {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}

	return activityJSON{
		Description: activity.Description,
		Schedule:    newActivity(activity).Schedule,
		ScheduleDetails: scheduleDetailsJSON{
			Days:      activity.Days,
			StartTime: activity.StartTime,
			EndTime:   activity.EndTime,
		},
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

// APIActivities returns the catalog snapshot keyed by activity name,
// optionally narrowed by day and time range.
func (h *handler) APIActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	activities, err := h.DB.GetActivities(ctx, database.ActivityFilter{
		Day:       xquery.ParseString(query, "day", ""),
		StartTime: xquery.ParseClock(query, "start_time", ""),
		EndTime:   xquery.ParseClock(query, "end_time", ""),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to get activities", slog.Any("err", err))
		respondDetail(w, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}

	catalog := make(map[string]activityJSON, len(activities))
	for _, activity := range activities {
		catalog[activity.Name] = newActivityJSON(activity)
	}

	respondJSON(w, http.StatusOK, catalog)
}

func (h *handler) APISignUp(w http.ResponseWriter, r *http.Request) {
	h.doRegisterAPI(w, r, true)
}

func (h *handler) APIUnregister(w http.ResponseWriter, r *http.Request) {
	h.doRegisterAPI(w, r, false)
}

func (h *handler) doRegisterAPI(w http.ResponseWriter, r *http.Request, signUp bool) {
	ctx := r.Context()
	query := r.URL.Query()

	name := r.PathValue("name")
	email := query.Get("email")

	if h.requireTeacher(ctx, w, query.Get("teacher_username")) == nil {
		return
	}

	if status, err := h.registerStudent(ctx, name, email, signUp); err != nil {
		respondDetail(w, status, err.Error())
		return
	}

	var message string
	if signUp {
		message = fmt.Sprintf("Signed up %s for %s", email, name)
	} else {
		message = fmt.Sprintf("Unregistered %s from %s", email, name)
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}
