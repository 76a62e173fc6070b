package main

import (
	"errors"
	"fmt"
	"os"

	"webpub1c/internal/publication"
)

// Exit statuses per error class, so scripts can branch on the kind of
// failure without parsing messages.
const (
	exitFailure       = 1
	exitConfiguration = 64
	exitDuplicate     = 65
	exitNotFound      = 66
	exitState         = 67
	exitParse         = 68
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, publication.ErrConfiguration):
		return exitConfiguration
	case errors.Is(err, publication.ErrDuplicate):
		return exitDuplicate
	case errors.Is(err, publication.ErrNotFound):
		return exitNotFound
	case errors.Is(err, publication.ErrState):
		return exitState
	case errors.Is(err, publication.ErrParse):
		return exitParse
	default:
		return exitFailure
	}
}
