package loop

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrShuttingDown is returned by Join once Shutdown has started.
var ErrShuttingDown = errors.New("server shutting down")

// Hub tracks the live sessions of a server so shutdown can notify them and
// wait for them to disconnect. Sessions never share game state.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]chan struct{}
	closing  bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{sessions: make(map[string]chan struct{})}
}

// Join registers a session. done closes when the server shuts down; leave
// must be called once the session has ended.
func (h *Hub) Join(id string) (done <-chan struct{}, leave func(), err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closing {
		return nil, nil, ErrShuttingDown
	}
	ch := make(chan struct{})
	h.sessions[id] = ch

	var once sync.Once
	leave = func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.sessions, id)
			h.mu.Unlock()
		})
	}
	return ch, leave, nil
}

// Len returns the number of live sessions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Shutdown notifies every session and waits until all have left or ctx is
// done. New sessions are refused from the first call on.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	if !h.closing {
		h.closing = true
		for _, ch := range h.sessions {
			close(ch)
		}
	}
	h.mu.Unlock()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Len() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
