package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
)

// EmployeeRepository is an in-memory roster store. Reads hand out deep
// copies so callers can never mutate shared state; Replace swaps the whole
// roster atomically.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []workforce.EmployeeRecord
}

func NewEmployeeRepository(seed []workforce.EmployeeRecord) *EmployeeRepository {
	return &EmployeeRepository{
		employees: workforce.CloneAll(seed),
	}
}

func (r *EmployeeRepository) Snapshot(ctx context.Context) ([]workforce.EmployeeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return workforce.CloneAll(r.employees), nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*workforce.EmployeeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if emp.ID == id {
			clone := emp.Clone()
			return &clone, nil
		}
	}
	return nil, workforce.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Replace(ctx context.Context, employees []workforce.EmployeeRecord) error {
	if len(employees) == 0 {
		return workforce.ErrEmptyRoster
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = workforce.CloneAll(employees)
	return nil
}
