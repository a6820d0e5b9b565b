package engine

import (
	"fmt"
	"math"
)

// Reduce applies op to a and b. Division by zero is not trapped and yields
// ±Inf or NaN. In scientific mode the result is rounded half away from zero
// to ScientificPrecision decimal places.
func Reduce(a, b float64, op Operator, mode Mode) (float64, error) {
	var result float64
	switch op {
	case Add:
		result = a + b
	case Subtract:
		result = a - b
	case Multiply:
		result = a * b
	case Divide:
		result = a / b
	case Percent:
		result = a * (b / 100)
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidOperator, int(op))
	}

	if mode == Scientific {
		result = roundTo(result, ScientificPrecision)
	}
	return result, nil
}

func roundTo(f float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(f*scale) / scale
}

// historyEntry renders a completed computation as "{a} {op} {b} = {result}".
func historyEntry(a, b float64, op Operator, result float64) string {
	return fmt.Sprintf("%s %s %s = %s", FormatNumber(a), op.Symbol(), FormatNumber(b), FormatNumber(result))
}
