package chat

import "errors"

// Chat domain errors
var (
	ErrMissingMessage = errors.New("Missing message")
)
