package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides component-tagged structured logging
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component string, err error, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

// ParseLevel maps a level name to a zerolog level, defaulting to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NoOpLogger discards everything
type NoOpLogger struct{}

func (n NoOpLogger) Info(component, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Warning(component, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Debug(component, message string, fields map[string]interface{})   {}

func (n NoOpLogger) Error(component string, err error, message string, fields map[string]interface{}) {}
