package catalog

import (
	"strings"
	"time"
)

var weekendDays = map[string]bool{
	"Saturday": true,
	"Sunday":   true,
}

// IsWeekend reports whether any scheduled day falls on a weekend.
func IsWeekend(days []string) bool {
	for _, day := range days {
		if weekendDays[day] {
			return true
		}
	}
	return false
}

// FormatSchedule renders the structured schedule as a display string, e.g.
// "Mondays and Fridays, 3:15 PM - 4:45 PM". Activities without structured
// days fall back to the legacy schedule text.
func FormatSchedule(a Activity) string {
	if len(a.Days) == 0 || a.StartTime == "" || a.EndTime == "" {
		return a.Schedule
	}

	plural := make([]string, len(a.Days))
	for i, day := range a.Days {
		plural[i] = day + "s"
	}

	var days string
	if len(plural) == 2 {
		days = plural[0] + " and " + plural[1]
	} else {
		days = strings.Join(plural, ", ")
	}

	return days + ", " + formatClock(a.StartTime) + " - " + formatClock(a.EndTime)
}

// formatClock converts a 24h "15:04" value to a 12h display value. Invalid
// input is returned unchanged rather than hidden.
func formatClock(value string) string {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}
