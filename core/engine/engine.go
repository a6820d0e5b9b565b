package engine

import (
	"math"

	"github.com/abacus-labs/abacus/pkg/logging"
	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=../../mocks/mock_observer.go github.com/abacus-labs/abacus/core/engine Observer

// Observer is notified after every intent the engine accepts. lastEntry is
// empty until the first computation completes.
type Observer interface {
	OnChange(display string, lastEntry string)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger leaves the default in place.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithObserver registers an observer. Observers are called in registration order.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// Engine owns the current State of one calculator session and applies
// intents to it. It is not safe for concurrent use; callers serialize intents.
type Engine struct {
	id        string
	state     State
	logger    logging.Logger
	observers []Observer
}

// New creates an Engine in the startup state.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:     uuid.NewString(),
		state:  NewState(),
		logger: logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("session_id", e.id)
	return e
}

// ID returns the session identifier attached to every log entry.
func (e *Engine) ID() string { return e.id }

// State returns the current snapshot.
func (e *Engine) State() State { return e.state }

// Display returns the text currently shown.
func (e *Engine) Display() string { return e.state.Display() }

// LastHistoryEntry returns the most recent completed computation, if any.
func (e *Engine) LastHistoryEntry() (string, bool) { return e.state.LastHistoryEntry() }

// History returns the retained computations, oldest first.
func (e *Engine) History() []string { return e.state.History() }

// Mode returns the current rounding mode.
func (e *Engine) Mode() Mode { return e.state.Mode() }

// Clear resets the display and any pending operation.
func (e *Engine) Clear() {
	e.commit("clear", e.state.Clear())
}

// EnterDigit applies a digit or decimal point token.
func (e *Engine) EnterDigit(token string) error {
	next, err := e.state.EnterDigit(token)
	if err != nil {
		e.logger.Warn("rejected digit", "token", token, "error", err)
		return err
	}
	e.commit("digit", next)
	return nil
}

// ApplyOperator sets the pending operator, reducing any operation already pending.
func (e *Engine) ApplyOperator(op Operator) error {
	next, err := e.state.ApplyOperator(op)
	if err != nil {
		e.logger.Warn("rejected operator", "operator", int(op), "error", err)
		return err
	}
	e.commit("operator", next)
	return nil
}

// ToggleSign negates the displayed value.
func (e *Engine) ToggleSign() {
	e.commit("toggle_sign", e.state.ToggleSign())
}

// Equals completes the pending operation, if there is one.
func (e *Engine) Equals() {
	e.commit("equals", e.state.Equals())
}

// SetMode switches the rounding mode and clears any computation in progress.
func (e *Engine) SetMode(m Mode) error {
	next, err := e.state.SetMode(m)
	if err != nil {
		e.logger.Warn("rejected mode", "mode", int(m), "error", err)
		return err
	}
	if next.Mode() != e.state.Mode() {
		e.logger.Info("mode changed", "from", e.state.Mode().String(), "to", m.String())
	}
	e.commit("set_mode", next)
	return nil
}

func (e *Engine) commit(intent string, next State) {
	computed := next.Computations() != e.state.Computations()
	e.state = next

	if computed {
		entry, _ := next.LastHistoryEntry()
		e.logger.Info("computation completed", "entry", entry, "mode", next.Mode().String())
		if v := ParseDisplay(next.Display()); math.IsNaN(v) || math.IsInf(v, 0) {
			e.logger.Warn("non-finite result", "display", next.Display())
		}
	}
	e.logger.Debug("intent applied", "intent", intent, "display", next.Display(), "awaiting_fresh_entry", next.AwaitingFreshEntry())

	last, _ := next.LastHistoryEntry()
	for _, o := range e.observers {
		o.OnChange(next.Display(), last)
	}
}
