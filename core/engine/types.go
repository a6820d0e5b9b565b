package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidDigit is returned for tokens other than "0".."9" and ".".
	ErrInvalidDigit = errors.New("invalid digit token")
	// ErrInvalidOperator is returned for operators outside the supported set.
	ErrInvalidOperator = errors.New("invalid operator")
	// ErrInvalidMode is returned for modes other than standard and scientific.
	ErrInvalidMode = errors.New("invalid mode")
)

// Operator is a binary operation awaiting its right-hand operand.
// The zero value means no operator is pending.
type Operator int

const (
	NoOperator Operator = iota
	Add
	Subtract
	Multiply
	Divide
	Percent
)

// Symbol returns the symbolic form used in history entries.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Percent:
		return "%"
	default:
		return ""
	}
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	case Percent:
		return "percent"
	default:
		return "none"
	}
}

// Valid reports whether o is one of the five supported operators.
func (o Operator) Valid() bool {
	return o >= Add && o <= Percent
}

// ParseOperator resolves an operator from its symbol ("+") or name ("add").
func ParseOperator(s string) (Operator, error) {
	if op, ok := OperatorSymbolMap[s]; ok {
		return op, nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	for _, op := range []Operator{Add, Subtract, Multiply, Divide, Percent} {
		if op.String() == name {
			return op, nil
		}
	}
	return NoOperator, fmt.Errorf("%w: %q", ErrInvalidOperator, s)
}

// Mode governs the rounding policy applied to computed results.
type Mode int

const (
	Standard Mode = iota
	Scientific
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Scientific:
		return "scientific"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Standard || m == Scientific
}

// ParseMode resolves a mode label, case-insensitively.
func ParseMode(s string) (Mode, error) {
	if m, ok := ModeNameMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return Standard, fmt.Errorf("%w: %q (supported: %s)", ErrInvalidMode, s, supportedModes())
}

func supportedModes() string {
	names := make([]string, 0, len(ModeNameMap))
	for name := range ModeNameMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func validDigit(token string) bool {
	for _, d := range DigitTokens {
		if token == d {
			return true
		}
	}
	return false
}
