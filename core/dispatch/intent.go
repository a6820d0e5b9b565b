package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abacus-labs/abacus/core/engine"
)

// ErrUnknownIntent is returned when presentation text maps to no intent.
var ErrUnknownIntent = errors.New("unknown intent")

// Kind identifies one of the six intents a presentation layer can dispatch.
type Kind int

const (
	KindDigit Kind = iota
	KindOperator
	KindClear
	KindToggleSign
	KindEquals
	KindMode
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindOperator:
		return "operator"
	case KindClear:
		return "clear"
	case KindToggleSign:
		return "toggle_sign"
	case KindEquals:
		return "equals"
	case KindMode:
		return "mode"
	default:
		return "unknown"
	}
}

// Intent is a single user input event. Only the field matching Kind is meaningful.
type Intent struct {
	Kind     Kind
	Digit    string
	Operator engine.Operator
	Mode     engine.Mode
}

// Digit builds a digit intent.
func Digit(token string) Intent { return Intent{Kind: KindDigit, Digit: token} }

// Operator builds an operator intent.
func Operator(op engine.Operator) Intent { return Intent{Kind: KindOperator, Operator: op} }

// SetMode builds a mode-change intent.
func SetMode(m engine.Mode) Intent { return Intent{Kind: KindMode, Mode: m} }

var (
	Clear      = Intent{Kind: KindClear}
	ToggleSign = Intent{Kind: KindToggleSign}
	Equals     = Intent{Kind: KindEquals}
)

func (i Intent) String() string {
	switch i.Kind {
	case KindDigit:
		return "digit:" + i.Digit
	case KindOperator:
		return "operator:" + i.Operator.Symbol()
	case KindMode:
		return "mode:" + i.Mode.String()
	default:
		return i.Kind.String()
	}
}

// ParseIntent maps a presentation token such as "7", "+", "=", "C", "+/-" or
// "mode:scientific" to an Intent. Word tokens are case-insensitive.
func ParseIntent(text string) (Intent, error) {
	token := strings.TrimSpace(text)
	if token == "" {
		return Intent{}, fmt.Errorf("%w: empty token", ErrUnknownIntent)
	}
	if len(token) == 1 && (token == "." || (token[0] >= '0' && token[0] <= '9')) {
		return Digit(token), nil
	}
	if op, ok := engine.OperatorSymbolMap[token]; ok {
		return Operator(op), nil
	}

	lower := strings.ToLower(token)
	switch lower {
	case "=", "equals":
		return Equals, nil
	case "c", "ac", "clear":
		return Clear, nil
	case "+/-", "±", "neg", "negate":
		return ToggleSign, nil
	}
	if name, ok := strings.CutPrefix(lower, "mode:"); ok {
		m, err := engine.ParseMode(name)
		if err != nil {
			return Intent{}, err
		}
		return SetMode(m), nil
	}
	return Intent{}, fmt.Errorf("%w: %q", ErrUnknownIntent, text)
}
