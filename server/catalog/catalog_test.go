package catalog

import (
	"testing"
)

func TestClassify(t *testing.T) {
	cases := map[string]Category{
		"Chess Club":                CategoryAcademic,
		"Programming Class":         CategoryTechnology,
		"Morning Fitness":           CategorySports,
		"Soccer Team":               CategorySports,
		"Art Club":                  CategoryArts,
		"Drama Club":                CategoryArts,
		"Math Club":                 CategoryAcademic,
		"Debate Team":               CategoryAcademic,
		"Weekend Robotics Workshop": CategoryTechnology,
		"Volunteer Crew":            CategoryCommunity,
		"Knitting Circle":           CategoryAcademic,
	}
	for name, expected := range cases {
		if got := Classify(name, ""); got != expected {
			t.Fatalf("Classify(%q) = %s, expected %s", name, got, expected)
		}
	}
}

func TestClassifyUsesDescription(t *testing.T) {
	if got := Classify("Morning Club", "Community service projects around town"); got != CategoryCommunity {
		t.Fatalf("expected community, got %s", got)
	}
}

func TestIsWeekend(t *testing.T) {
	cases := []struct {
		days     []string
		expected bool
	}{
		{[]string{"Monday", "Friday"}, false},
		{[]string{"Saturday"}, true},
		{[]string{"Sunday"}, true},
		{[]string{"Friday", "Saturday"}, true},
		{nil, false},
	}
	for _, c := range cases {
		if got := IsWeekend(c.days); got != c.expected {
			t.Fatalf("IsWeekend(%v) = %t, expected %t", c.days, got, c.expected)
		}
	}
}

func TestFormatSchedule(t *testing.T) {
	cases := []struct {
		activity Activity
		expected string
	}{
		{
			Activity{Days: []string{"Monday", "Friday"}, StartTime: "15:15", EndTime: "16:45"},
			"Mondays and Fridays, 3:15 PM - 4:45 PM",
		},
		{
			Activity{Days: []string{"Saturday"}, StartTime: "10:00", EndTime: "16:00"},
			"Saturdays, 10:00 AM - 4:00 PM",
		},
		{
			Activity{Days: []string{"Monday", "Wednesday", "Friday"}, StartTime: "06:30", EndTime: "07:45"},
			"Mondays, Wednesdays, Fridays, 6:30 AM - 7:45 AM",
		},
		{
			Activity{Schedule: "Fridays after school"},
			"Fridays after school",
		},
		{
			Activity{Days: []string{"Monday"}, StartTime: "bogus", EndTime: "16:00"},
			"Mondays, bogus - 4:00 PM",
		},
	}
	for _, c := range cases {
		if got := FormatSchedule(c.activity); got != c.expected {
			t.Fatalf("FormatSchedule(%v) = %q, expected %q", c.activity, got, c.expected)
		}
	}
}

func TestFilterMatchesCategory(t *testing.T) {
	chess := Activity{Name: "Chess Club", Description: "Learn strategies and compete"}
	soccer := Activity{Name: "Soccer Team", Description: "Join the school soccer team"}

	if !(Filter{Category: CategoryAcademic}).Matches(chess) {
		t.Fatal("chess should match academic")
	}
	if (Filter{Category: CategorySports}).Matches(chess) {
		t.Fatal("chess should not match sports")
	}
	if !(Filter{Category: CategoryAll}).Matches(soccer) {
		t.Fatal("all should match everything")
	}
	if !(Filter{}).Matches(soccer) {
		t.Fatal("empty filter should match everything")
	}
}

func TestFilterMatchesWeekend(t *testing.T) {
	robotics := Activity{Name: "Weekend Robotics Workshop", Days: []string{"Saturday"}}
	chess := Activity{Name: "Chess Club", Days: []string{"Monday", "Friday"}}

	filter := Filter{WeekendOnly: true}
	if !filter.Matches(robotics) {
		t.Fatal("saturday activity should match weekend filter")
	}
	if filter.Matches(chess) {
		t.Fatal("weekday activity should not match weekend filter")
	}
}

func TestFilterMatchesQuery(t *testing.T) {
	activity := Activity{
		Name:        "Programming Class",
		Description: "Learn programming fundamentals",
		Days:        []string{"Tuesday", "Thursday"},
		StartTime:   "15:30",
		EndTime:     "16:30",
	}

	cases := map[string]bool{
		"programming": true,
		"PROGRAMMING": true,
		"fundament":   true,
		"tuesdays":    true,
		"3:30 pm":     true,
		"basketball":  false,
	}
	for query, expected := range cases {
		if got := (Filter{Query: query}).Matches(activity); got != expected {
			t.Fatalf("query %q = %t, expected %t", query, got, expected)
		}
	}
}

func TestFilterCombines(t *testing.T) {
	activity := Activity{
		Name:        "Sunday Chess Tournament",
		Description: "Monthly tournament",
		Days:        []string{"Sunday"},
		StartTime:   "13:00",
		EndTime:     "17:00",
	}

	if !(Filter{Category: CategoryAcademic, WeekendOnly: true, Query: "tournament"}).Matches(activity) {
		t.Fatal("activity should match all predicates")
	}
	if (Filter{Category: CategoryAcademic, WeekendOnly: true, Query: "soccer"}).Matches(activity) {
		t.Fatal("one failing predicate should exclude the activity")
	}
}

func TestFilterApplyPreservesOrder(t *testing.T) {
	activities := []Activity{
		{Name: "Art Club"},
		{Name: "Soccer Team"},
		{Name: "Drama Club"},
		{Name: "Basketball Team"},
	}

	result := Filter{Category: CategoryArts}.Apply(activities)
	if len(result) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(result))
	}
	if result[0].Name != "Art Club" || result[1].Name != "Drama Club" {
		t.Fatalf("unexpected order: %v", result)
	}
}
