package workforce

import "errors"

// Workforce domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmptyRoster      = errors.New("roster must not be empty")
)
