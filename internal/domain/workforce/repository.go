package workforce

import "context"

// EmployeeRepository supplies employee snapshots to the detection pipeline.
// Implementations must return isolated copies; the pipeline never writes back.
type EmployeeRepository interface {
	// Snapshot returns a deep copy of the full roster in stable order.
	Snapshot(ctx context.Context) ([]EmployeeRecord, error)

	// GetByID returns a deep copy of a single employee.
	GetByID(ctx context.Context, id string) (*EmployeeRecord, error)

	// Replace swaps the whole roster atomically. Used by the event source
	// (the simulation tick in this build).
	Replace(ctx context.Context, employees []EmployeeRecord) error
}
