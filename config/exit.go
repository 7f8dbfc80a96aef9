package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Exit codes for the minefield command.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode maps a run error to a process exit code: help requests exit
// cleanly, bad settings are usage errors, everything else is a failure.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, ErrInvalidConfig):
		return ExitUsage
	default:
		return ExitError
	}
}

// Report writes err to w under the command name and returns its exit code.
// Help requests print nothing; the flag set already wrote the usage.
func Report(w io.Writer, name string, err error) int {
	code := ExitCode(err)
	if code != ExitOK {
		fmt.Fprintf(w, "%s: %v\n", name, err)
	}
	return code
}

// Exit reports err on stderr and terminates the process with its exit code.
func Exit(name string, err error) {
	os.Exit(Report(os.Stderr, name, err))
}
