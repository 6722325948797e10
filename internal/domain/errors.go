package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the console. Services and the planner wrap
// these with fmt.Errorf("...: %w", err) so callers can test with errors.Is.
var (
	// ErrNotFound is returned when a lookup by identifier finds nothing,
	// locally or server-side.
	ErrNotFound = errors.New("not found")

	// ErrPrecondition is returned when an action is attempted before its
	// required predecessor state, e.g. adding a session to a program that
	// has not been persisted yet.
	ErrPrecondition = errors.New("precondition failed")

	// ErrValidation is returned when a required field is missing or invalid
	// before a persist or session call is issued.
	ErrValidation = errors.New("validation failed")

	// ErrSlotOccupied is returned when a session is placed on a grid cell
	// (date, start, end) already held by another session of the same program.
	ErrSlotOccupied = errors.New("slot already occupied")

	// ErrRemote matches any RemoteError via errors.Is.
	ErrRemote = errors.New("remote call failed")
)

// RemoteError reports a rejected or unreachable collaborator call. Message
// carries the server's own message when one was available.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote call failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote call failed with status %d: %s", e.StatusCode, e.Message)
}

// Is makes errors.Is(err, ErrRemote) match any RemoteError.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}
