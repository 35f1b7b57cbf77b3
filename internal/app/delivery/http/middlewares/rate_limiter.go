package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles per client IP and blocks an IP for blockTime once it
// exceeds its budget.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(logger *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		log:       logger,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if r.now().Before(blockedUntil) {
				r.mu.Unlock()
				utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(ip))
				return
			}

			delete(r.blocked, ip)
			delete(r.limiters, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(max(r.requests, 1))), r.requests)
			r.limiters[ip] = limiter
		}

		if !limiter.AllowN(r.now(), 1) {
			r.blocked[ip] = r.now().Add(r.blockTime)
			r.mu.Unlock()
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(ip))
			return
		}

		r.mu.Unlock()
		next.ServeHTTP(w, req)
	})
}
