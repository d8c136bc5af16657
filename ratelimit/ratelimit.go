package ratelimit

import (
	"sync"
	"time"
)

// Result describes the outcome of a single Check call.
type Result struct {
	Allowed   bool      `json:"allowed"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window request counter keyed by arbitrary strings (IP,
// fingerprint, composite). State is process-local; running multiple instances
// splits the budget across them, so a shared deployment needs an external
// counter store with the same window semantics.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// Default is the process-wide limiter shared by all call sites.
var Default = New()

func New() *Limiter {
	return &Limiter{entries: make(map[string]*entry)}
}

// Check records one request against key and reports whether it fits within
// max requests per window. The first request for an unseen or expired key
// opens a new window. The counter keeps incrementing past the limit so that
// Remaining and ResetAt stay accurate for Retry-After headers; distinct keys
// are fully independent.
func (l *Limiter) Check(key string, max int, window time.Duration) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &entry{count: 1, resetAt: now.Add(window)}
		l.entries[key] = e
		return Result{Allowed: max >= 1, Remaining: maxInt(max-1, 0), ResetAt: e.resetAt}
	}

	e.count++
	return Result{
		Allowed:   e.count <= max,
		Remaining: maxInt(max-e.count, 0),
		ResetAt:   e.resetAt,
	}
}

// Reap drops entries whose window has expired and returns how many were
// removed. Called periodically from the cron scheduler so the map does not
// grow without bound.
func (l *Limiter) Reap() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
