// Package errors holds the CLI layer's error presentation helpers.
// Typed API failures live in internal/api; this package only decides
// how an error reaches the terminal and the log.
package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/habits/internal/logger"
)

// Format renders an error with the consistent "Error: " prefix.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf renders a formatted message with the "Error: " prefix.
func Formatf(format string, args ...any) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs the error, prints it to stderr, and exits with code 1.
// A nil error is a no-op.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal with a format string.
func Fatalf(format string, args ...any) {
	logger.Error("Command execution failed", "error", fmt.Sprintf(format, args...))
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
