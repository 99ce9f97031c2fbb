package middleware

import (
	"sync"
	"time"

	"appointment_manager/internal/apperror"
	"appointment_manager/internal/response"

	"github.com/gin-gonic/gin"
)

// CounterStore counts requests per key within a fixed window. The in-process
// implementation below suits a single instance; a shared store (e.g. Redis)
// can be swapped in for multi-instance deployments.
type CounterStore interface {
	// Incr bumps the counter for key and returns the count within the
	// current window, starting a fresh window when the previous one ended.
	Incr(key string) int
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

type fixedWindowStore struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]*windowEntry
}

// NewFixedWindowStore creates an in-memory fixed-window counter. Entries are
// reset lazily on next access after their window elapses.
func NewFixedWindowStore(window time.Duration) CounterStore {
	return &fixedWindowStore{
		window:  window,
		entries: make(map[string]*windowEntry),
	}
}

func (s *fixedWindowStore) Incr(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e, ok := s.entries[key]
	if !ok || now.After(e.resetAt) {
		s.entries[key] = &windowEntry{count: 1, resetAt: now.Add(s.window)}
		return 1
	}
	e.count++
	return e.count
}

// RateLimit rejects clients exceeding maxRequests per window, keyed by IP
func RateLimit(store CounterStore, maxRequests int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Incr(c.ClientIP()) > maxRequests {
			response.Error(c, apperror.TooManyRequests(
				"Too many requests from this IP, please try again later"))
			return
		}
		c.Next()
	}
}
