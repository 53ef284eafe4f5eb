package api

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/linesmerrill/dmv-records-api/config"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter allows each client IP a fixed number of requests per window.
// A client that stays quiet for a full window is forgotten.
type RateLimiter struct {
	limit      rate.Limit
	burst      int
	window     time.Duration
	trustProxy bool
	now        func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastPrune time.Time
}

// NewRateLimiter returns nil when requests or window is not positive, which
// disables limiting
func NewRateLimiter(requests int, window time.Duration, trustProxy bool) *RateLimiter {
	if requests <= 0 || window <= 0 {
		return nil
	}
	return &RateLimiter{
		limit:      rate.Every(window / time.Duration(requests)),
		burst:      requests,
		window:     window,
		trustProxy: trustProxy,
		now:        time.Now,
		visitors:   map[string]*visitor{},
	}
}

// Middleware answers 429 once a client has spent its allowance
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := l.clientIP(r)
		if wait := l.reserve(ip); wait > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			config.ErrorStatus("too many requests, please try again later", http.StatusTooManyRequests, w,
				fmt.Errorf("rate limit exceeded for %s", ip))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// reserve spends a token for ip. It returns zero when the request may proceed
// and how long the client has to wait otherwise.
func (l *RateLimiter) reserve(ip string) time.Duration {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPrune) >= l.window {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) >= l.window {
				delete(l.visitors, key)
			}
		}
		l.lastPrune = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	res := v.limiter.ReserveN(now, 1)
	wait := res.DelayFrom(now)
	if wait > 0 {
		res.CancelAt(now)
	}
	return wait
}

func (l *RateLimiter) clientIP(r *http.Request) string {
	if l.trustProxy {
		// the proxy appends the address it saw, so the last hop is the one to trust
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			hops := strings.Split(fwd, ",")
			if ip := strings.TrimSpace(hops[len(hops)-1]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
