package dispatch

import (
	"errors"

	"github.com/abacus-labs/abacus/pkg/logging"
	"golang.org/x/time/rate"
)

// ErrThrottled is returned when an intent arrives faster than the configured rate.
var ErrThrottled = errors.New("intent throttled")

// Middleware wraps a Handler with additional behaviour.
type Middleware func(Handler) Handler

// Chain wraps h with the given middlewares. The first middleware is the
// outermost, so it sees each intent first.
func Chain(h Handler, middlewares ...Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// loggingHandler logs each intent and its outcome.
type loggingHandler struct {
	next   Handler
	logger logging.Logger
}

func (h *loggingHandler) Handle(i Intent) error {
	h.logger.Debug("dispatching intent", "intent", i.String())
	err := h.next.Handle(i)
	if err != nil {
		h.logger.Warn("intent rejected", "intent", i.String(), "error", err)
	}
	return err
}

// LoggingMiddleware creates a middleware that logs every dispatched intent.
func LoggingMiddleware(logger logging.Logger) Middleware {
	return func(next Handler) Handler {
		return &loggingHandler{next: next, logger: logger}
	}
}

// throttlingHandler drops intents once the token bucket is empty.
type throttlingHandler struct {
	next    Handler
	limiter *rate.Limiter
}

func (h *throttlingHandler) Handle(i Intent) error {
	if !h.limiter.Allow() {
		return ErrThrottled
	}
	return h.next.Handle(i)
}

// ThrottlingMiddleware rejects intents beyond r per second with bursts of b,
// which filters key bounce from hardware keypads. A zero rate disables it.
func ThrottlingMiddleware(r rate.Limit, b int) Middleware {
	if r <= 0 {
		r = rate.Inf
	}
	limiter := rate.NewLimiter(r, b)
	return func(next Handler) Handler {
		return &throttlingHandler{next: next, limiter: limiter}
	}
}
