//go:generate mockgen -package=mocks -destination=../mocks/mock_calculator.go github.com/abacus-labs/abacus/interfaces Calculator

package interfaces

import "github.com/abacus-labs/abacus/core/engine"

// Calculator is the command surface a presentation layer drives.
type Calculator interface {
	// Clear resets the display and any pending operation.
	Clear()
	// EnterDigit applies "0".."9" or ".".
	EnterDigit(token string) error
	// ApplyOperator sets the pending operator, chaining any pending operation.
	ApplyOperator(op engine.Operator) error
	// ToggleSign negates the displayed value.
	ToggleSign()
	// Equals completes the pending operation.
	Equals()
	// SetMode switches the rounding mode and clears any computation in progress.
	SetMode(m engine.Mode) error
	// Display returns the text to render.
	Display() string
	// LastHistoryEntry returns the most recent completed computation, if any.
	LastHistoryEntry() (string, bool)
}
