// Package abacus wires the calculation engine, intent dispatch and
// configuration into a session a presentation layer can drive with plain
// tokens.
package abacus

import (
	"fmt"

	"github.com/abacus-labs/abacus/core/config"
	"github.com/abacus-labs/abacus/core/dispatch"
	"github.com/abacus-labs/abacus/core/engine"
	"github.com/abacus-labs/abacus/interfaces"
	"github.com/abacus-labs/abacus/pkg/logging"
	"golang.org/x/time/rate"
)

// NewEngine creates a calculator in its startup state.
func NewEngine(logger logging.Logger, observers ...engine.Observer) interfaces.Calculator {
	return newEngine(logger, observers)
}

func newEngine(logger logging.Logger, observers []engine.Observer) *engine.Engine {
	opts := []engine.Option{engine.WithLogger(logger)}
	for _, o := range observers {
		opts = append(opts, engine.WithObserver(o))
	}
	return engine.New(opts...)
}

// Session is one calculator together with the handler chain that admits
// presentation intents. It is not safe for concurrent use.
type Session struct {
	engine  *engine.Engine
	handler dispatch.Handler
}

// NewSession builds a session from cfg. A nil cfg uses config.DefaultConfig.
func NewSession(cfg *config.FileConfig, logger logging.Logger, observers ...engine.Observer) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	e := newEngine(logger, observers)
	handler := dispatch.Chain(
		dispatch.NewDispatcher(e),
		dispatch.LoggingMiddleware(logger.With("session_id", e.ID())),
		dispatch.ThrottlingMiddleware(rate.Limit(cfg.Input.RatePerSecond), cfg.Input.Burst),
	)
	return &Session{engine: e, handler: handler}, nil
}

// Press parses a presentation token and applies it.
func (s *Session) Press(token string) error {
	i, err := dispatch.ParseIntent(token)
	if err != nil {
		return err
	}
	return s.handler.Handle(i)
}

// PressAll applies tokens in order and stops at the first rejected one.
func (s *Session) PressAll(tokens ...string) error {
	for _, tok := range tokens {
		if err := s.Press(tok); err != nil {
			return fmt.Errorf("token %q: %w", tok, err)
		}
	}
	return nil
}

// Dispatch applies an already parsed intent.
func (s *Session) Dispatch(i dispatch.Intent) error {
	return s.handler.Handle(i)
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.engine.ID() }

// Display returns the text to render.
func (s *Session) Display() string { return s.engine.Display() }

// LastHistoryEntry returns the most recent completed computation, if any.
func (s *Session) LastHistoryEntry() (string, bool) { return s.engine.LastHistoryEntry() }

// History returns the retained computations, oldest first.
func (s *Session) History() []string { return s.engine.History() }

// Mode returns the current rounding mode.
func (s *Session) Mode() engine.Mode { return s.engine.Mode() }
