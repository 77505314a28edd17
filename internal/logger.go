package internal

import (
	"log"
	"os"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var (
	logLevel = LogLevelError
	logger   = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	logLevel = level
}

// SetVerbosity maps a -v count to a log level: none is errors only, -v adds
// warnings, -vv info, -vvv and above debug.
func SetVerbosity(count int) {
	switch {
	case count <= 0:
		SetLogLevel(LogLevelError)
	case count == 1:
		SetLogLevel(LogLevelWarn)
	case count == 2:
		SetLogLevel(LogLevelInfo)
	default:
		SetLogLevel(LogLevelDebug)
	}
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	if logLevel >= LogLevelError {
		logger.Printf("[ERROR] "+format, args...)
	}
}

// LogWarn logs a warning message
func LogWarn(format string, args ...interface{}) {
	if logLevel >= LogLevelWarn {
		logger.Printf("[WARN] "+format, args...)
	}
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	if logLevel >= LogLevelInfo {
		logger.Printf("[INFO] "+format, args...)
	}
}

// LogDebug logs a debug message
func LogDebug(format string, args ...interface{}) {
	if logLevel >= LogLevelDebug {
		logger.Printf("[DEBUG] "+format, args...)
	}
}
