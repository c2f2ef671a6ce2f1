// Package catalog holds the pure activity-catalog logic: category
// classification, schedule formatting, and the filter predicates applied to a
// catalog snapshot before rendering.
package catalog

import (
	"strings"
)

// Activity is the catalog view of an activity. Schedule carries the legacy
// free-text schedule for activities without structured days.
type Activity struct {
	Name        string
	Description string
	Schedule    string
	Days        []string
	StartTime   string
	EndTime     string
}

type Category string

const (
	CategoryAll        Category = "all"
	CategorySports     Category = "sports"
	CategoryArts       Category = "arts"
	CategoryAcademic   Category = "academic"
	CategoryCommunity  Category = "community"
	CategoryTechnology Category = "technology"
)

var Categories = []Category{
	CategorySports,
	CategoryArts,
	CategoryAcademic,
	CategoryCommunity,
	CategoryTechnology,
}

var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategorySports, []string{"soccer", "basketball", "fitness", "gym", "sport", "athletic"}},
	{CategoryArts, []string{"art", "drama", "theater", "music", "paint"}},
	{CategoryTechnology, []string{"programming", "coding", "computer", "robotics", "tech"}},
	{CategoryCommunity, []string{"volunteer", "community", "service"}},
	{CategoryAcademic, []string{"chess", "math", "science", "debate", "olympiad", "academic", "study"}},
}

// Classify derives a category from the activity name and description by
// keyword matching. This is deliberately approximate; activities carry no
// stored category, and anything unmatched falls back to academic.
func Classify(name string, description string) Category {
	text := strings.ToLower(name + " " + description)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.category
			}
		}
	}
	return CategoryAcademic
}
