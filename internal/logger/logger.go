package logger

import "go.uber.org/zap"

// New builds the process logger: human-readable console output in debug,
// JSON in production.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
