package storeapi

import (
	"net"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// rateLimiter keeps one token bucket per remote host.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
	log      logrus.FieldLogger
}

func newRateLimiter(perSecond float64, burst int, log logrus.FieldLogger) *rateLimiter {
	return &rateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
		log:      log,
	}
}

func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	l, ok := rl.limiters[key]
	if !ok {
		l = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = l
	}
	return l
}

func (rl *rateLimiter) handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			key = r.RemoteAddr
		}
		if !rl.limiter(key).Allow() {
			rl.log.WithFields(logrus.Fields{"remote": key, "path": r.URL.Path}).Warn("rate limit exceeded")
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"message": "too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
