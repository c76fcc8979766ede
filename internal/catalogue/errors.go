package catalogue

import "errors"

var (
	ErrUnknownKind     = errors.New("unknown list kind")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
	ErrRejectedEdit    = errors.New("rejected filter edit")
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrNoEdits         = errors.New("no filter edits")
)
