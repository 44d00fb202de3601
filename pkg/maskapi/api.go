package maskapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/inputmask/pkg/clientip"
	"github.com/dmitrymomot/inputmask/pkg/fields"
	"github.com/dmitrymomot/inputmask/pkg/logger"
	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/ratelimiter"
	"github.com/dmitrymomot/inputmask/pkg/requestid"
	"github.com/dmitrymomot/inputmask/pkg/validator"
)

// API serves a field registry.
type API struct {
	registry *fields.Registry
	log      *slog.Logger
	limiter  ratelimiter.Limiter
}

type Option func(*API)

// WithLogger sets the request logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithRateLimit throttles the POST endpoints per client IP.
func WithRateLimit(l ratelimiter.Limiter) Option {
	return func(a *API) { a.limiter = l }
}

func New(registry *fields.Registry, opts ...Option) *API {
	a := &API{registry: registry, log: logger.Discard()}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("maskapi"))
	return a
}

// Routes builds the router.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(a.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/health", a.health)
	r.Get("/masks", a.listMasks)
	r.Group(func(r chi.Router) {
		if a.limiter != nil {
			r.Use(ratelimiter.Middleware(a.limiter, clientip.FromRequest,
				ratelimiter.WithDenyHandler(a.throttled),
				ratelimiter.WithErrorHandler(a.fail),
			))
		}
		r.Post("/masks/{name}", a.applyMask)
		r.Post("/patterns/apply", a.applyPattern)
	})
	return r
}

func (a *API) throttled(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
	a.log.WarnContext(r.Context(), "request throttled", slog.String("client_ip", clientip.FromRequest(r)))
	a.fail(w, r, ErrRateLimited)
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		a.log.InfoContext(r.Context(), "request",
			logger.Group("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
			),
			logger.Duration(time.Since(start)),
		)
	})
}

func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := errorResponse(err)
	if status >= http.StatusInternalServerError {
		a.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}
	_ = writeJSON(w, status, Envelope{Error: detail})
}

func (a *API) health(w http.ResponseWriter, _ *http.Request) {
	_ = writeJSON(w, http.StatusOK, Envelope{Data: map[string]string{"status": "ok"}})
}

// MaskList is the body of GET /masks.
type MaskList struct {
	Masks   []string `json:"masks"`
	Regions []string `json:"regions"`
}

func (a *API) listMasks(w http.ResponseWriter, _ *http.Request) {
	_ = writeJSON(w, http.StatusOK, Envelope{Data: MaskList{
		Masks:   a.registry.Names(),
		Regions: a.registry.Regions(),
	}})
}

type MaskRequest struct {
	Value    string `json:"value"`
	Selector string `json:"selector"`
}

// MaskResult is the body of POST /masks/{name}. Number is set for numeric
// fields only.
type MaskResult struct {
	Display string   `json:"display"`
	Clean   string   `json:"clean"`
	Number  *float64 `json:"number,omitempty"`
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors,omitempty"`
}

func (a *API) applyMask(w http.ResponseWriter, r *http.Request) {
	var req MaskRequest
	if err := bindJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	name := chi.URLParam(r, "name")
	f, err := a.registry.Lookup(name, req.Selector)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	out := fields.Evaluate(f, req.Value)
	res := MaskResult{Display: out.Display, Clean: out.Clean, Number: out.Value, Valid: out.Err == nil}
	if out.Err != nil {
		if !validator.IsValidationError(out.Err) {
			a.log.WarnContext(r.Context(), "mask unavailable", logger.Mask(name), logger.Region(req.Selector), logger.Error(out.Err))
		}
		res.Errors = validationMessages(out.Err)
	}

	a.log.DebugContext(r.Context(), "mask applied", logger.Mask(name), logger.Region(req.Selector), slog.Bool("valid", res.Valid))
	_ = writeJSON(w, http.StatusOK, Envelope{Data: res})
}

func validationMessages(err error) []string {
	verrs := validator.ExtractValidationErrors(err)
	if verrs.IsEmpty() {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, e.Message)
	}
	return out
}

type PatternRequest struct {
	Pattern string `json:"pattern"`
	Reverse bool   `json:"reverse"`
	Value   string `json:"value"`
}

// PatternResult is the body of POST /patterns/apply. Formatted is Result with
// the trailing connector trimmed.
type PatternResult struct {
	Result    string `json:"result"`
	Remaining string `json:"remaining"`
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted"`
	Slots     int    `json:"slots"`
}

func (a *API) applyPattern(w http.ResponseWriter, r *http.Request) {
	var req PatternRequest
	if err := bindJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	dir := mask.Forward
	if req.Reverse {
		dir = mask.Reverse
	}
	p, err := mask.Compile(req.Pattern, dir)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	res := p.Apply(req.Value)
	a.log.DebugContext(r.Context(), "pattern applied", logger.Pattern(p.String()), slog.String("direction", dir.String()))
	_ = writeJSON(w, http.StatusOK, Envelope{Data: PatternResult{
		Result:    res.Result,
		Remaining: res.Remaining,
		Valid:     res.Valid,
		Formatted: p.Trim(res.Result),
		Slots:     p.SlotCount(),
	}})
}
