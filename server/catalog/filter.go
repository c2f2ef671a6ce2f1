package catalog

import (
	"strings"
)

// Filter is the set of predicates applied to a catalog snapshot. Zero values
// match everything.
type Filter struct {
	Category    Category
	WeekendOnly bool
	Query       string
}

// Matches reports whether the activity satisfies every active predicate.
func (f Filter) Matches(a Activity) bool {
	if f.Category != "" && f.Category != CategoryAll && Classify(a.Name, a.Description) != f.Category {
		return false
	}

	if f.WeekendOnly && !IsWeekend(a.Days) {
		return false
	}

	if f.Query != "" {
		haystack := strings.ToLower(a.Name + " " + a.Description + " " + FormatSchedule(a))
		if !strings.Contains(haystack, strings.ToLower(f.Query)) {
			return false
		}
	}

	return true
}

// Apply returns the subset of activities matching the filter, preserving the
// original order.
func (f Filter) Apply(activities []Activity) []Activity {
	var result []Activity
	for _, activity := range activities {
		if f.Matches(activity) {
			result = append(result, activity)
		}
	}
	return result
}
