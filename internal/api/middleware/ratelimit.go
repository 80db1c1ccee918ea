package middleware

import (
	"fmt"
	"log"
	"net/http"
	"sysdesignlab/internal/common"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
)

// RateLimiter implements fixed-window request limits backed by Redis
// counters, so limits hold across server replicas. When Redis is
// unreachable the limiter fails open: availability beats strictness here.
type RateLimiter struct {
	rdb *redis.Client
}

func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	return &RateLimiter{rdb: rdb}
}

// Limit returns a middleware allowing max requests per window for the named
// bucket. Requests are keyed by authenticated user when available,
// otherwise by client IP.
func (rl *RateLimiter) Limit(name string, max int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("ratelimit:%s:%s", name, clientKey(r))

			count, err := rl.rdb.Incr(r.Context(), key).Result()
			if err != nil {
				log.Printf("WARN: rate limiter unavailable, allowing request: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := rl.rdb.Expire(r.Context(), key, window).Err(); err != nil {
					log.Printf("WARN: failed to set rate limit window on %s: %v", key, err)
				}
			}
			if count > int64(max) {
				common.RespondWithError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if userID, ok := GetUserIDFromContext(r.Context()); ok {
		return "user:" + userID
	}
	// RealIP middleware has already rewritten RemoteAddr when forwarded
	// headers are present.
	if ip := r.RemoteAddr; ip != "" {
		return "ip:" + ip
	}
	return "ip:" + middleware.GetReqID(r.Context())
}
