package dispatch

import (
	"fmt"

	"github.com/abacus-labs/abacus/interfaces"
)

// Handler applies intents to a calculator.
type Handler interface {
	Handle(i Intent) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(i Intent) error

// Handle calls f(i).
func (f HandlerFunc) Handle(i Intent) error { return f(i) }

// NewDispatcher returns the innermost Handler, which forwards each intent to calc.
func NewDispatcher(calc interfaces.Calculator) Handler {
	return HandlerFunc(func(i Intent) error {
		switch i.Kind {
		case KindDigit:
			return calc.EnterDigit(i.Digit)
		case KindOperator:
			return calc.ApplyOperator(i.Operator)
		case KindClear:
			calc.Clear()
		case KindToggleSign:
			calc.ToggleSign()
		case KindEquals:
			calc.Equals()
		case KindMode:
			return calc.SetMode(i.Mode)
		default:
			return fmt.Errorf("%w: kind %d", ErrUnknownIntent, int(i.Kind))
		}
		return nil
	})
}
