package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// GooseLogger adapts the goose logger interface to slog.
type GooseLogger struct {
	logger *slog.Logger
}

// NewGooseLogger creates a goose logger writing to l.
func NewGooseLogger(l *slog.Logger) *GooseLogger {
	return &GooseLogger{logger: l.With("component", "migrations")}
}

// Printf implements goose.Logger by forwarding messages to Info.
func (g *GooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements goose.Logger. Unlike the standard Fatalf it does not
// exit; the error reaches main through goose's return value.
func (g *GooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
