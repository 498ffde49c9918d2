// Package console provides the page's debug logging helpers. In the browser
// they write to the developer console; natively they go through the log
// package.
package console

// EnableDebug gates every helper in this package.
var EnableDebug = true

// Debug logs args at info level.
func Debug(args ...interface{}) {
	if EnableDebug {
		write(levelLog, args)
	}
}

// Warn logs args at warning level.
func Warn(args ...interface{}) {
	if EnableDebug {
		write(levelWarn, args)
	}
}

// Error logs args at error level.
func Error(args ...interface{}) {
	if EnableDebug {
		write(levelError, args)
	}
}

type level string

const (
	levelLog   level = "log"
	levelWarn  level = "warn"
	levelError level = "error"
)
