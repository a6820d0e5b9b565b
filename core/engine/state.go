package engine

import (
	"fmt"
	"math"
)

// State is an immutable snapshot of the calculator. Every transition returns
// a new State and never mutates the receiver, so snapshots can be retained
// and compared freely.
//
// display doubles as a text buffer while digits are entered and as a number
// once an operator consumes it. It is never empty.
type State struct {
	display            string
	pendingValue       float64
	pendingOperator    Operator
	awaitingFreshEntry bool
	mode               Mode
	history            []string
	computations       int
}

// NewState returns the startup state: display "0", nothing pending, fresh
// entry expected, standard mode and an empty history.
func NewState() State {
	return State{
		display:            initialDisplay,
		awaitingFreshEntry: true,
		mode:               Standard,
	}
}

// Display returns the text currently shown.
func (s State) Display() string { return s.display }

// Pending returns the left-hand operand and operator awaiting a right-hand
// operand. ok is false when no operation is in progress.
func (s State) Pending() (value float64, op Operator, ok bool) {
	if s.pendingOperator == NoOperator {
		return 0, NoOperator, false
	}
	return s.pendingValue, s.pendingOperator, true
}

// AwaitingFreshEntry reports whether the next digit starts a new number.
func (s State) AwaitingFreshEntry() bool { return s.awaitingFreshEntry }

// Mode returns the rounding mode.
func (s State) Mode() Mode { return s.mode }

// History returns a copy of the retained history, oldest first.
func (s State) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// LastHistoryEntry returns the most recent history entry, if any.
func (s State) LastHistoryEntry() (string, bool) {
	if len(s.history) == 0 {
		return "", false
	}
	return s.history[len(s.history)-1], true
}

// Computations counts every reduction performed since startup, including
// those whose entries have since been evicted from history.
func (s State) Computations() int { return s.computations }

// Clear resets the entry and any pending operation. Mode and history are kept.
func (s State) Clear() State {
	s.display = initialDisplay
	s.pendingValue = 0
	s.pendingOperator = NoOperator
	s.awaitingFreshEntry = true
	return s
}

// EnterDigit appends token to the display, or starts a new entry with it.
// A display of exactly "0" is replaced rather than extended. Repeated decimal
// points are not rejected.
func (s State) EnterDigit(token string) (State, error) {
	if !validDigit(token) {
		return s, fmt.Errorf("%w: %q", ErrInvalidDigit, token)
	}
	switch {
	case s.awaitingFreshEntry:
		s.display = token
		s.awaitingFreshEntry = false
	case s.display == initialDisplay:
		s.display = token
	default:
		s.display += token
	}
	return s, nil
}

// ApplyOperator records op as the pending operator. When an operation is
// already pending it is reduced first against the current display, so
// operators chain left to right with no precedence.
func (s State) ApplyOperator(op Operator) (State, error) {
	if !op.Valid() {
		return s, fmt.Errorf("%w: %d", ErrInvalidOperator, int(op))
	}
	current := ParseDisplay(s.display)

	if s.pendingOperator == NoOperator {
		s.pendingValue = current
	} else {
		result := s.reduce(current)
		s.pendingValue = result
		s.display = FormatNumber(result)
	}

	s.pendingOperator = op
	s.awaitingFreshEntry = true
	return s, nil
}

// ToggleSign negates the displayed value. A computed NaN stays NaN; any other
// display that does not parse as a number is treated as zero.
func (s State) ToggleSign() State {
	v := ParseDisplay(s.display)
	if math.IsNaN(v) && s.display != FormatNumber(math.NaN()) {
		v = 0
	}
	s.display = FormatNumber(-v)
	return s
}

// Equals completes the pending operation. Without one it returns s unchanged.
func (s State) Equals() State {
	if s.pendingOperator == NoOperator {
		return s
	}
	result := s.reduce(ParseDisplay(s.display))
	s.display = FormatNumber(result)
	s.pendingValue = 0
	s.pendingOperator = NoOperator
	s.awaitingFreshEntry = true
	return s
}

// SetMode switches the rounding mode and discards any computation in
// progress. History survives the switch.
func (s State) SetMode(m Mode) (State, error) {
	if !m.Valid() {
		return s, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	s.mode = m
	return s.Clear(), nil
}

// reduce folds current into the pending operation and records the history
// entry. The caller guarantees an operator is pending.
func (s *State) reduce(current float64) float64 {
	// pendingOperator is always valid here, so Reduce cannot fail.
	result, _ := Reduce(s.pendingValue, current, s.pendingOperator, s.mode)
	s.history = appendHistory(s.history, historyEntry(s.pendingValue, current, s.pendingOperator, result))
	s.computations++
	return result
}

// appendHistory returns a new slice holding the most recent HistoryCapacity
// entries; h itself is never modified.
func appendHistory(h []string, entry string) []string {
	start := 0
	if len(h)+1 > HistoryCapacity {
		start = len(h) + 1 - HistoryCapacity
	}
	next := make([]string, 0, HistoryCapacity)
	next = append(next, h[start:]...)
	return append(next, entry)
}
