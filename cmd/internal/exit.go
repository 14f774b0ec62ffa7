package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Stderr receives everything written by Echo and Fatal.
var Stderr io.Writer = os.Stderr

const (
	ExitFailure = 1
	// ExitAuth is used when a container couldn't be opened with the given password.
	ExitAuth = 2
)

// Fatal will Echo the message and os.Exit with ExitFailure.
func Fatal(msg string, args ...any) {
	FatalCode(ExitFailure, msg, args...)
}

// FatalCode will Echo the message and os.Exit with the given code.
func FatalCode(code int, msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(code)
}

// Echo will emit the given message to Stderr without any logging formatting.
// Stdout is reserved for command output, like generated passwords.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(Stderr, msg, args...)
}
