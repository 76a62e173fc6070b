package publication

import (
	"errors"
	"fmt"
)

// Sentinel errors classify every failure the publication store and
// records can surface. Callers branch with errors.Is; the CLI maps each
// class to a distinct exit status.
var (
	// ErrConfiguration marks a missing host file or required directory.
	ErrConfiguration = errors.New("configuration error")
	// ErrDuplicate marks an attempt to publish an already published name.
	ErrDuplicate = errors.New("already publicated")
	// ErrNotFound marks an operation on a name that is not published.
	ErrNotFound = errors.New("not publicated")
	// ErrState marks an artifact path collision or invalid derived paths.
	ErrState = errors.New("invalid publication state")
	// ErrParse marks a corrupted managed block. Never auto-repaired.
	ErrParse = errors.New("config parse error")
)

// Warning records a non-fatal failure from one step of a forced
// dual-step operation. Forced create and remove attempt both artifact
// steps independently and report individual failures here instead of
// aborting the sibling step.
type Warning struct {
	Op  string
	Err error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Op, w.Err)
}
