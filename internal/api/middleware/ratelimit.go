package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers"
)

const msgRateLimited = "слишком много запросов, попробуйте позже"

// token bucket в одном round-trip: KEYS[1] состояние, ARGV now_ms, capacity, refill, interval_ms, ttl_s
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
  tokens = capacity
  last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
  local intervals = math.floor(math.max(0, now_ms - last_refill) / interval_ms)
  if intervals > 0 then
    tokens = math.min(capacity, tokens + intervals * refill_tokens)
    last_refill = last_refill + intervals * interval_ms
  end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
  allowed = 1
  tokens = tokens - 1
else
  retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// RateLimitOptions параметры token bucket
type RateLimitOptions struct {
	Enabled        bool
	Prefix         string
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
}

// RateLimiter ограничивает мутации бронирований на пользователя (или IP для анонимов).
// При недоступном Redis запросы пропускаются.
type RateLimiter struct {
	client *redis.Client
	opts   RateLimitOptions
	logger Logger
}

func NewRateLimiter(client *redis.Client, opts RateLimitOptions, logger Logger) *RateLimiter {
	return &RateLimiter{client: client, opts: opts, logger: logger}
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	if l == nil || !l.opts.Enabled || l.client == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.key(r)
		args := []interface{}{
			time.Now().UnixMilli(),
			l.opts.Capacity,
			l.opts.RefillTokens,
			l.opts.RefillInterval.Milliseconds(),
			int64(l.opts.TTL / time.Second),
		}

		vals, err := tokenBucket.Run(r.Context(), l.client, []string{key}, args...).Int64Slice()
		if err != nil || len(vals) != 3 {
			l.logger.Warn("RateLimit: redis error for key=%s: %v", key, err)
			next.ServeHTTP(w, r)
			return
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.opts.Capacity))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			l.logger.Warn("RateLimit: blocked key=%s, retry in %dms", key, retryMs)
			handlers.RespondTooManyRequests(w, msgRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) key(r *http.Request) string {
	if s, ok := SessionFromContext(r.Context()); ok {
		return fmt.Sprintf("%s:user:%d", l.opts.Prefix, s.UserID)
	}
	return fmt.Sprintf("%s:ip:%s", l.opts.Prefix, clientIP(r))
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
