package backend

import (
	"errors"
	"fmt"

	"voice-commander/internal/command"
)

// ErrUnavailable indicates the chosen backend has no configured specialist.
// Known before any call is made; triggers silent graceful degradation.
var ErrUnavailable = errors.New("backend not configured")

// CallError wraps a specialist failure after a call was actually attempted.
// Still degrades, but is logged as a real failure.
type CallError struct {
	Backend command.Backend
	Err     error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Backend, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}
