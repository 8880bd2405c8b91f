package contact

import (
	"context"
	"sync"
	"time"
)

// Limiter remembers when each client last passed the gate.
type Limiter interface {
	Last(ctx context.Context, key string) (time.Time, error)
	Record(ctx context.Context, key string, at time.Time) error
}

// MemoryLimiter keeps timestamps in process memory. Entries older than the
// window are pruned on write.
type MemoryLimiter struct {
	mu     sync.Mutex
	window time.Duration
	last   map[string]time.Time
}

// NewMemoryLimiter builds an in-process limiter.
func NewMemoryLimiter(window time.Duration) *MemoryLimiter {
	if window <= 0 {
		window = DefaultRateWindow
	}
	return &MemoryLimiter{window: window, last: make(map[string]time.Time)}
}

func (l *MemoryLimiter) Last(_ context.Context, key string) (time.Time, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last[key], nil
}

func (l *MemoryLimiter) Record(_ context.Context, key string, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, t := range l.last {
		if at.Sub(t) >= l.window {
			delete(l.last, k)
		}
	}
	l.last[key] = at
	return nil
}
