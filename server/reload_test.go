package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCacheMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	newReloader(true).CacheMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("dev mode should disable caching, got %q", got)
	}

	rec = httptest.NewRecorder()
	newReloader(false).CacheMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	if got := rec.Header().Get("Cache-Control"); got != "stale-while-revalidate, max-age=3600" {
		t.Fatalf("unexpected cache header: %q", got)
	}
}

func TestReloaderHandlerDisabledOutsideDev(t *testing.T) {
	rec := httptest.NewRecorder()
	newReloader(false).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dev/reload", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 outside dev mode, got %d", rec.Code)
	}
}

func TestReloaderNotify(t *testing.T) {
	n := newReloader(true)

	id, ch := n.subscribe()
	defer n.unsubscribe(id)

	n.Notify()
	select {
	case <-ch:
	default:
		t.Fatal("subscriber should have a pending signal")
	}

	// A second notify on a full channel must not block.
	n.Notify()
	n.Notify()
}

func TestReloaderClose(t *testing.T) {
	n := newReloader(true)
	_, ch := n.subscribe()

	n.Close()
	if _, ok := <-ch; ok {
		t.Fatal("channel should be closed")
	}

	if id, _ := n.subscribe(); id != -1 {
		t.Fatal("subscribe after close should be rejected")
	}
}
