package xquery

import (
	"net/url"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		value    string
		expected string
	}{
		{"15:04", "15:04"},
		{"06:30", "06:30"},
		{"", "fallback"},
		{"25:00", "fallback"},
		{"3pm", "fallback"},
	}
	for _, c := range cases {
		query := url.Values{}
		if c.value != "" {
			query.Set("start_time", c.value)
		}
		if got := ParseClock(query, "start_time", "fallback"); got != c.expected {
			t.Fatalf("ParseClock(%q) = %q, expected %q", c.value, got, c.expected)
		}
	}
}

func TestParseBool(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"false": false,
		"on":    true,
		"off":   false,
		"1":     true,
		"maybe": false,
	}
	for value, expected := range cases {
		query := url.Values{"weekend": {value}}
		if got := ParseBool(query, "weekend", false); got != expected {
			t.Fatalf("ParseBool(%q) = %t, expected %t", value, got, expected)
		}
	}

	if !ParseBool(url.Values{}, "weekend", true) {
		t.Fatal("missing value should return default")
	}
}

func TestParseInt(t *testing.T) {
	query := url.Values{"page": {"3"}, "bad": {"x"}}
	if got := ParseInt(query, "page", 1); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := ParseInt(query, "bad", 1); got != 1 {
		t.Fatalf("expected default 1, got %d", got)
	}
	if got := ParseInt(query, "missing", 7); got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}
}

func TestParseString(t *testing.T) {
	query := url.Values{"q": {"chess"}}
	if got := ParseString(query, "q", ""); got != "chess" {
		t.Fatalf("expected chess, got %q", got)
	}
	if got := ParseString(query, "missing", "all"); got != "all" {
		t.Fatalf("expected default all, got %q", got)
	}
}
