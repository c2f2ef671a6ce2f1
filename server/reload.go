package server

import (
	"fmt"
	"net/http"
	"sync"
)

const ReloadRoute = "GET /dev/reload"

func newReloader(dev bool) *Reloader {
	return &Reloader{
		dev:     dev,
		clients: make(map[int]chan struct{}),
	}
}

// Reloader fans out template/static change notifications to any number of
// subscribed browsers over SSE. Outside dev mode it is inert and only serves
// as the cache middleware switch.
type Reloader struct {
	dev     bool
	mu      sync.Mutex
	closed  bool
	nextID  int
	clients map[int]chan struct{}
}

func (n *Reloader) subscribe() (int, <-chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		ch := make(chan struct{})
		close(ch)
		return -1, ch
	}

	id := n.nextID
	n.nextID++

	ch := make(chan struct{}, 1)
	n.clients[id] = ch

	return id, ch
}

func (n *Reloader) unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ch, ok := n.clients[id]; ok {
		close(ch)
		delete(n.clients, id)
	}
}

// Notify broadcasts a reload signal without blocking on slow readers. A
// subscriber with a pending signal keeps it and reloads on its next poll.
func (n *Reloader) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	for _, ch := range n.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (n *Reloader) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true

	for id, ch := range n.clients {
		close(ch)
		delete(n.clients, id)
	}
}

// Handler serves the SSE endpoint the dev reload script listens on.
func (n *Reloader) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !n.dev {
			http.NotFound(w, r)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		id, ch := n.subscribe()
		defer n.unsubscribe(id)

		_, _ = fmt.Fprint(w, ": connected\n\n")
		flusher.Flush()

		for {
			select {
			case <-r.Context().Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				_, _ = fmt.Fprint(w, "data: reload\n\n")
				flusher.Flush()
			}
		}
	})
}

// CacheMiddleware disables asset caching in dev mode so edited templates and
// styles show up on the next reload.
func (n *Reloader) CacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if n.dev {
			w.Header().Set("Cache-Control", "no-store")
		} else {
			w.Header().Set("Cache-Control", "stale-while-revalidate, max-age=3600")
		}
		next.ServeHTTP(w, r)
	})
}
