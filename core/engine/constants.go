package engine

const (
	// HistoryCapacity is the number of completed computations retained.
	HistoryCapacity = 5

	// ScientificPrecision is the number of decimal places kept in scientific mode.
	ScientificPrecision = 2

	initialDisplay = "0"
)

// OperatorSymbolMap maps the symbolic form of each operator to its value.
var OperatorSymbolMap = map[string]Operator{
	"+": Add,
	"-": Subtract,
	"*": Multiply,
	"/": Divide,
	"%": Percent,
}

// ModeNameMap maps mode labels to Mode values.
var ModeNameMap = map[string]Mode{
	"standard":   Standard,
	"scientific": Scientific,
}

// DigitTokens lists every token accepted by EnterDigit.
var DigitTokens = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."}
