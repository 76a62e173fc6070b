package main

import (
	"errors"
	"fmt"
	"testing"

	"webpub1c/internal/publication"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"configuration", publication.ErrConfiguration, exitConfiguration},
		{"duplicate", publication.ErrDuplicate, exitDuplicate},
		{"not found", publication.ErrNotFound, exitNotFound},
		{"state", publication.ErrState, exitState},
		{"parse", publication.ErrParse, exitParse},
		{"wrapped", fmt.Errorf("add: %w", publication.ErrDuplicate), exitDuplicate},
		{"plain", errors.New("boom"), exitFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
