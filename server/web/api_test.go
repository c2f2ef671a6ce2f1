package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondDetail(rec, http.StatusBadRequest, "Activity is full")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %s", err)
	}
	if body["detail"] != "Activity is full" {
		t.Fatalf("unexpected detail: %q", body["detail"])
	}
}

func TestCleanPath(t *testing.T) {
	var gotPath string
	h := cleanPath(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))

	cases := map[string]string{
		"/announcements/":    "/announcements",
		"/activities//Chess": "/activities/Chess",
		"/":                  "/",
		"/a/b/../c":          "/a/c",
	}
	for input, expected := range cases {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, input, nil))
		if gotPath != expected {
			t.Fatalf("path %q cleaned to %q, expected %q", input, gotPath, expected)
		}
	}
}
