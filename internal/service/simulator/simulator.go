package simulator

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
)

// Simulator stands in for a live clock-event stream: each tick picks one
// random employee and advances its state the way real telemetry would. The
// detection engine never mutates records itself; this is the only writer.
type Simulator struct {
	repo     workforce.EmployeeRepository
	settings workforce.OrgSettings

	mu  sync.Mutex // guards rnd, which is not goroutine-safe
	rnd *rand.Rand

	now func() time.Time
}

func New(repo workforce.EmployeeRepository, settings workforce.OrgSettings, rnd *rand.Rand) *Simulator {
	return &Simulator{
		repo:     repo,
		settings: settings,
		rnd:      rnd,
		now:      time.Now,
	}
}

// Tick mutates one random employee and writes the roster back.
func (s *Simulator) Tick(ctx context.Context) error {
	employees, err := s.repo.Snapshot(ctx)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		return nil
	}

	s.mu.Lock()
	now := s.now()
	pick := &employees[s.rnd.Intn(len(employees))]

	switch pick.Status {
	case workforce.StatusClockedIn:
		if s.rnd.Float64() > 0.6 {
			pick.Status = workforce.StatusOnBreak
			pick.CurrentSession.BreakStartTime = &now
		} else {
			pick.Overtime.WorkedThisWeekHours = min(42, pick.Overtime.WorkedThisWeekHours+0.15)
			pick.TimeIntegrity.UnassignedHours = max(0, pick.TimeIntegrity.UnassignedHours+(s.rnd.Float64()-0.4)*0.3)
			if s.settings.GeofenceEnabled && s.rnd.Float64() > 0.7 && pick.CurrentSession.Location != nil {
				s.driftLocation(pick)
			}
		}
	case workforce.StatusOnBreak:
		if s.rnd.Float64() > 0.5 {
			pick.Status = workforce.StatusClockedIn
			pick.CurrentSession.BreakStartTime = nil
		}
	default:
		if s.rnd.Float64() > 0.5 {
			pick.Status = workforce.StatusClockedIn
			pick.CurrentSession.ClockInTime = &now
			pick.LastClockOutAt = nil
		} else {
			pick.LastClockOutAt = &now
		}
	}

	slog.Debug("simulation tick applied",
		"employee_id", pick.ID,
		"status", pick.Status,
	)
	s.mu.Unlock()

	return s.repo.Replace(ctx, employees)
}

// driftLocation flips the session label between HQ and the parking lot and
// decays the location consistency score, mimicking a geofence wobble.
func (s *Simulator) driftLocation(emp *workforce.EmployeeRecord) {
	loc := *emp.CurrentSession.Location
	if loc.Label == "Draper HQ" {
		loc.Label = "Parking Lot - East"
	} else {
		loc.Label = "Draper HQ"
	}
	emp.CurrentSession.Location = &loc

	score := 0.7
	if emp.CurrentSession.LocationConsistencyScore != nil {
		score = *emp.CurrentSession.LocationConsistencyScore
	}
	score = max(0.2, score-0.12)
	emp.CurrentSession.LocationConsistencyScore = &score
}
