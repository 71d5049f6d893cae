package broll

import "errors"

// Failure modes for the decomposition call. The feasibility path never
// surfaces errors; it falls back to a permissive default instead.
var (
	// ErrUnexpectedFormat reports a decomposition reply that could not be
	// read as the expected JSON array. Retrying the same request is the
	// only recovery.
	ErrUnexpectedFormat = errors.New("AI response was not in the expected format")

	// ErrServiceUnavailable reports a failed or timed-out call to the
	// generative text service.
	ErrServiceUnavailable = errors.New("generative service temporarily unavailable")
)
