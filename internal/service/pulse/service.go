package pulse

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/exception"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/pulse"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/service/detector"
)

type PulseServiceImpl struct {
	repo     workforce.EmployeeRepository
	engine   *detector.Engine
	settings workforce.OrgSettings

	// Consumer-side mute state, keyed by stable exception id. Applied as a
	// post-filter after ranking; the engine never sees it.
	mu           sync.Mutex
	dismissed    map[string]struct{}
	snoozedUntil map[string]time.Time

	now func() time.Time
}

func NewPulseService(repo workforce.EmployeeRepository, engine *detector.Engine, settings workforce.OrgSettings) *PulseServiceImpl {
	return &PulseServiceImpl{
		repo:         repo,
		engine:       engine,
		settings:     settings,
		dismissed:    make(map[string]struct{}),
		snoozedUntil: make(map[string]time.Time),
		now:          time.Now,
	}
}

// GetSnapshot runs a full evaluation pass. Header counts are derived from
// the same post-filtered list the caller receives.
func (s *PulseServiceImpl) GetSnapshot(ctx context.Context) (*pulse.SnapshotResponse, error) {
	now := s.now()

	employees, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	exceptions, err := s.engine.Evaluate(ctx, employees, s.settings, now)
	if err != nil {
		return nil, err
	}
	exceptions = s.applyMutes(exceptions, now)

	counts, sentence := s.engine.SummarizeHeader(employees, exceptions, now)

	return &pulse.SnapshotResponse{
		Employees:      employees,
		Exceptions:     exceptions,
		Counts:         counts,
		StatusSentence: sentence,
		LastUpdated:    now,
	}, nil
}

func (s *PulseServiceImpl) ListEmployees(ctx context.Context, search string) ([]workforce.EmployeeRecord, error) {
	employees, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return employees, nil
	}

	filtered := make([]workforce.EmployeeRecord, 0, len(employees))
	for _, emp := range employees {
		if strings.Contains(strings.ToLower(emp.Name), search) ||
			strings.Contains(strings.ToLower(emp.Role), search) {
			filtered = append(filtered, emp)
		}
	}
	return filtered, nil
}

func (s *PulseServiceImpl) ListExceptions(ctx context.Context) ([]exception.Exception, error) {
	snapshot, err := s.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Exceptions, nil
}

func (s *PulseServiceImpl) GetHeader(ctx context.Context) (*pulse.HeaderResponse, error) {
	snapshot, err := s.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &pulse.HeaderResponse{
		Counts:         snapshot.Counts,
		StatusSentence: snapshot.StatusSentence,
	}, nil
}

// Dismiss hides the exception id from every later snapshot. Ids are stable
// per (employee, type), so a dismissal survives re-evaluation passes.
func (s *PulseServiceImpl) Dismiss(ctx context.Context, exceptionID string) error {
	if strings.TrimSpace(exceptionID) == "" {
		return pulse.ErrMissingExceptionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissed[exceptionID] = struct{}{}
	delete(s.snoozedUntil, exceptionID)
	return nil
}

func (s *PulseServiceImpl) Snooze(ctx context.Context, exceptionID string, duration string) (*pulse.SnoozeResponse, error) {
	if strings.TrimSpace(exceptionID) == "" {
		return nil, pulse.ErrMissingExceptionID
	}

	until, err := s.snoozeUntil(duration)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snoozedUntil[exceptionID] = until

	return &pulse.SnoozeResponse{ExceptionID: exceptionID, Until: until}, nil
}

func (s *PulseServiceImpl) snoozeUntil(duration string) (time.Time, error) {
	now := s.now()
	switch duration {
	case pulse.SnoozeHalfHour:
		return now.Add(30 * time.Minute), nil
	case pulse.SnoozeTwoHours:
		return now.Add(2 * time.Hour), nil
	case pulse.SnoozeToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 23, 59, 59, 0, now.Location()), nil
	}
	return time.Time{}, pulse.ErrInvalidSnoozeDuration
}

// applyMutes drops dismissed and still-snoozed exceptions, pruning expired
// snoozes as it goes.
func (s *PulseServiceImpl) applyMutes(exceptions []exception.Exception, now time.Time) []exception.Exception {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, until := range s.snoozedUntil {
		if !until.After(now) {
			delete(s.snoozedUntil, id)
		}
	}

	visible := make([]exception.Exception, 0, len(exceptions))
	for _, ex := range exceptions {
		if _, ok := s.dismissed[ex.ID]; ok {
			continue
		}
		if until, ok := s.snoozedUntil[ex.ID]; ok && until.After(now) {
			continue
		}
		visible = append(visible, ex)
	}
	return visible
}
