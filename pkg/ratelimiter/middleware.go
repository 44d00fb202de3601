package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
)

// KeyFunc picks the bucket for a request. An empty key leaves the request
// unthrottled.
type KeyFunc func(r *http.Request) string

// DenyFunc writes the response for a throttled request. Rate limit headers
// are already set when it runs.
type DenyFunc func(w http.ResponseWriter, r *http.Request, res Result)

// ErrorFunc writes the response when the limiter fails.
type ErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

type middlewareConfig struct {
	deny    DenyFunc
	onError ErrorFunc
}

type MiddlewareOption func(*middlewareConfig)

// WithDenyHandler replaces the plain 429 response. Nil is ignored.
func WithDenyHandler(h DenyFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.deny = h
		}
	}
}

// WithErrorHandler replaces the plain 500 response. Nil is ignored.
func WithErrorHandler(h ErrorFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onError = h
		}
	}
}

// Middleware takes one token per request from the bucket chosen by keyFunc.
func Middleware(l Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		deny: func(w http.ResponseWriter, _ *http.Request, _ Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), key)
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(res.Remaining, 0)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				h.Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter().Seconds()))))
				cfg.deny(w, r, res)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
