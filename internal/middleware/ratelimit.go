package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/forumhub-dev/forumhub/internal/utils"
)

// ipLimiter keeps one token bucket per client IP. Stale entries are dropped
// so the map doesn't grow without bound.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rps      rate.Limit
	burst    int
	ttl      time.Duration
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIpLimiter(rps float64, burst int, ttl time.Duration) *ipLimiter {
	return &ipLimiter{
		limiters: make(map[string]*limiterEntry),
		rps:      rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now

	if len(l.limiters) > 1000 {
		for key, e := range l.limiters {
			if now.Sub(e.lastSeen) > l.ttl {
				delete(l.limiters, key)
			}
		}
	}

	return entry.limiter.Allow()
}

// RateLimitByIP rejects clients that exceed the per-IP request budget.
func RateLimitByIP(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := newIpLimiter(rps, burst, time.Hour)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, err := utils.GetIP(r)
			if err != nil {
				http.Error(w, "Can't determine client address", http.StatusBadRequest)
				return
			}
			if !limiter.allow(ip) {
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
