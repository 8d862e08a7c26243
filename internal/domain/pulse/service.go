package pulse

import (
	"context"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/exception"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
)

// PulseService defines the workforce-pulse dashboard operations.
type PulseService interface {
	// GetSnapshot runs a full evaluation pass and returns employees, ranked
	// exceptions (dismiss/snooze applied) and header data.
	GetSnapshot(ctx context.Context) (*SnapshotResponse, error)

	// ListEmployees returns the roster, optionally filtered by a
	// case-insensitive search over name and role.
	ListEmployees(ctx context.Context, search string) ([]workforce.EmployeeRecord, error)

	// ListExceptions returns the ranked, post-filtered exception list.
	ListExceptions(ctx context.Context) ([]exception.Exception, error)

	// GetHeader returns header counts and the status sentence.
	GetHeader(ctx context.Context) (*HeaderResponse, error)

	// Dismiss hides an exception id from subsequent snapshots.
	Dismiss(ctx context.Context, exceptionID string) error

	// Snooze hides an exception id until the duration expires.
	Snooze(ctx context.Context, exceptionID string, duration string) (*SnoozeResponse, error)
}
