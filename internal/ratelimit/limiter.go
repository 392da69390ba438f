// Package ratelimit implements an in-memory sliding-window request limiter.
// It is a single-process usability throttle, not a security boundary; the
// Limiter interface exists so handlers never see the implementation and a
// distributed limiter can be swapped in.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Policy is the request budget for one limiter.
type Policy struct {
	Max    int
	Window time.Duration
}

type entry struct {
	count   int
	resetAt time.Time
}

// WindowLimiter counts requests per key within a fixed window that resets
// wholesale once elapsed. A sweeper goroutine evicts expired entries so the
// map does not grow without bound.
type WindowLimiter struct {
	mu      sync.Mutex
	policy  Policy
	entries map[string]*entry

	stop chan struct{}
	once sync.Once
}

var _ Limiter = (*WindowLimiter)(nil)

// NewWindowLimiter creates a limiter and starts its sweeper.
func NewWindowLimiter(policy Policy) *WindowLimiter {
	l := &WindowLimiter{
		policy:  policy,
		entries: make(map[string]*entry),
		stop:    make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow records a request for key and reports whether it is within budget.
// The first request after the window elapses starts a fresh window.
func (l *WindowLimiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(l.policy.Window)}
		return true
	}

	e.count++
	return e.count <= l.policy.Max
}

// Stop terminates the sweeper goroutine.
func (l *WindowLimiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func (l *WindowLimiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			now := time.Now()
			l.mu.Lock()
			for key, e := range l.entries {
				if now.After(e.resetAt) {
					delete(l.entries, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
