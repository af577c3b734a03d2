package auth

import (
	"sync"
	"time"
)

type lockoutEntry struct {
	failures    int
	lastFailure time.Time
}

// LockoutTracker counts consecutive failed logins per identifier and
// rejects further attempts once the limit is reached, until the lockout
// window elapses. State is process-local and volatile: a restart resets
// all counters, and in a multi-process deployment each process counts
// independently.
//
// Counting is keyed by the login identifier rather than the client
// address, so it also tracks attempts against emails with no account.
type LockoutTracker struct {
	mu          sync.Mutex
	entries     map[string]lockoutEntry
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

func NewLockoutTracker(maxAttempts int, window time.Duration) *LockoutTracker {
	return &LockoutTracker{
		entries:     make(map[string]lockoutEntry),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Check returns a *RateLimitError while the identifier is locked out.
// An entry whose lockout window has elapsed is discarded.
func (t *LockoutTracker) Check(identifier string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[identifier]
	if !ok || entry.failures < t.maxAttempts {
		return nil
	}

	lockedUntil := entry.lastFailure.Add(t.window)
	now := t.now()
	if now.Before(lockedUntil) {
		remaining := int(lockedUntil.Sub(now).Minutes())
		if remaining < 1 {
			remaining = 1
		}
		return &RateLimitError{RetryAfterMinutes: remaining}
	}

	delete(t.entries, identifier)
	return nil
}

// RecordFailure increments the failure counter for the identifier and
// refreshes its timestamp, creating the entry on the first failure.
func (t *LockoutTracker) RecordFailure(identifier string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry := t.entries[identifier]
	entry.failures++
	entry.lastFailure = t.now()
	t.entries[identifier] = entry
}

// Clear drops the entry for the identifier unconditionally. Called after
// a successful login.
func (t *LockoutTracker) Clear(identifier string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, identifier)
}
