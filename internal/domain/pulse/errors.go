package pulse

import "errors"

// Pulse domain errors
var (
	ErrInvalidSnoozeDuration = errors.New("snooze duration must be one of 30m, 2h, today")
	ErrMissingExceptionID    = errors.New("exception id is required")
)
