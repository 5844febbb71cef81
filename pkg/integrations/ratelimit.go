package integrations

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// Rate-limit response headers sent by the remote service.
const (
	HeaderRateLimitLimit     = "X-Ratelimit-Limit"
	HeaderRateLimitRemaining = "X-Ratelimit-Remaining"
	HeaderRateLimitReset     = "X-Ratelimit-Reset"
)

// RateLimit is the rate-limit state reported by a single response.
type RateLimit struct {
	Limit      int           // Requests allowed per window (0 if the header was absent)
	Remaining  int           // Requests left in the current window
	Reset      time.Duration // Time until the window resets, as of ObservedAt
	ObservedAt time.Time     // When the response carrying these headers was processed
}

// ResetAt returns the instant the window resets.
func (r RateLimit) ResetAt() time.Time {
	return r.ObservedAt.Add(r.Reset)
}

// RateLimitTracker records the rate-limit headers of the most recent response.
//
// It only observes; it never delays or rejects requests. Each observation
// replaces the whole state in one atomic store, so a reader never sees the
// remaining count of one response paired with the reset time of another.
// A zero RateLimitTracker is ready to use and safe for concurrent use.
type RateLimitTracker struct {
	state atomic.Pointer[RateLimit]
	now   func() time.Time
}

// NewRateLimitTracker creates an empty tracker.
func NewRateLimitTracker() *RateLimitTracker {
	return &RateLimitTracker{now: time.Now}
}

// Observe parses the rate-limit headers in h and replaces the stored state.
//
// The update is all-or-nothing: Remaining and Reset must both be present and
// parse as non-negative integers, otherwise the headers are ignored and the
// previous state is kept. Limit is optional. A reset too large for a
// time.Duration is clamped to the largest whole-second duration. Observe
// reports whether the state was replaced.
func (t *RateLimitTracker) Observe(h http.Header) (RateLimit, bool) {
	remaining, ok := headerInt(h, HeaderRateLimitRemaining)
	if !ok {
		return RateLimit{}, false
	}
	reset, ok := headerInt(h, HeaderRateLimitReset)
	if !ok {
		return RateLimit{}, false
	}
	limit, _ := headerInt(h, HeaderRateLimitLimit)

	now := time.Now
	if t.now != nil {
		now = t.now
	}
	state := RateLimit{
		Limit:      limit,
		Remaining:  remaining,
		Reset:      resetDuration(reset),
		ObservedAt: now(),
	}
	t.state.Store(&state)
	return state, true
}

// Current returns the last observed state, or false if no response carrying
// rate-limit headers has been processed yet.
func (t *RateLimitTracker) Current() (RateLimit, bool) {
	p := t.state.Load()
	if p == nil {
		return RateLimit{}, false
	}
	return *p, true
}

// maxResetSeconds is the largest reset that fits in a time.Duration.
const maxResetSeconds = math.MaxInt64 / int64(time.Second)

func resetDuration(seconds int) time.Duration {
	if int64(seconds) > maxResetSeconds {
		return time.Duration(maxResetSeconds) * time.Second
	}
	return time.Duration(seconds) * time.Second
}

func headerInt(h http.Header, key string) (int, bool) {
	v := strings.TrimSpace(h.Get(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
