//go:generate mockgen -package=mocks -destination=../../mocks/mock_logger.go github.com/abacus-labs/abacus/pkg/logging Logger

package logging

// Logger is the structured logging surface used across the engine, the
// dispatcher and the presentation bridges.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	With(keysAndValues ...interface{}) Logger
}
