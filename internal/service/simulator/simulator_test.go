package simulator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/repository/memory"
)

var simNow = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func simRoster() []workforce.EmployeeRecord {
	clockIn := simNow.Add(-4 * time.Hour)
	breakStart := simNow.Add(-20 * time.Minute)
	score := 0.9
	return []workforce.EmployeeRecord{
		{
			ID:     "emp-1",
			Name:   "Maya Chen",
			Status: workforce.StatusClockedIn,
			CurrentSession: workforce.EmployeeSession{
				ClockInTime:              &clockIn,
				Location:                 &workforce.SessionLocation{Label: "Draper HQ"},
				LocationConsistencyScore: &score,
			},
			Overtime: workforce.OvertimeState{ThresholdHours: 40, WorkedThisWeekHours: 30},
		},
		{
			ID:             "emp-2",
			Name:           "Jae Park",
			Status:         workforce.StatusOnBreak,
			CurrentSession: workforce.EmployeeSession{ClockInTime: &clockIn, BreakStartTime: &breakStart},
		},
		{
			ID:     "emp-3",
			Name:   "Hannah Wolfe",
			Status: workforce.StatusClockedOut,
		},
	}
}

func allEnabled() workforce.OrgSettings {
	return workforce.OrgSettings{
		SchedulingEnabled: true,
		OvertimeEnabled:   true,
		KioskPhotoEnabled: true,
		GeofenceEnabled:   true,
	}
}

func newTestSimulator(seed int64) (*Simulator, *memory.EmployeeRepository) {
	repo := memory.NewEmployeeRepository(simRoster())
	sim := New(repo, allEnabled(), rand.New(rand.NewSource(seed)))
	sim.now = func() time.Time { return simNow }
	return sim, repo
}

func TestTick_PreservesRoster(t *testing.T) {
	sim, repo := newTestSimulator(1)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		require.NoError(t, sim.Tick(ctx))
	}

	got, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	ids := map[string]bool{}
	for _, emp := range got {
		ids[emp.ID] = true
	}
	assert.True(t, ids["emp-1"] && ids["emp-2"] && ids["emp-3"])
}

func TestTick_InvariantsHoldOverManyTicks(t *testing.T) {
	sim, repo := newTestSimulator(7)
	ctx := context.Background()

	validStatuses := map[workforce.EmployeeStatus]bool{
		workforce.StatusClockedIn:  true,
		workforce.StatusOnBreak:    true,
		workforce.StatusClockedOut: true,
	}

	prevWorked := map[string]float64{}
	for _, emp := range simRoster() {
		prevWorked[emp.ID] = emp.Overtime.WorkedThisWeekHours
	}

	for i := 0; i < 200; i++ {
		require.NoError(t, sim.Tick(ctx))

		got, err := repo.Snapshot(ctx)
		require.NoError(t, err)

		for _, emp := range got {
			assert.True(t, validStatuses[emp.Status], "unknown status %q for %s", emp.Status, emp.ID)
			assert.GreaterOrEqual(t, emp.TimeIntegrity.UnassignedHours, 0.0)
			assert.LessOrEqual(t, emp.Overtime.WorkedThisWeekHours, 42.0)
			assert.GreaterOrEqual(t, emp.Overtime.WorkedThisWeekHours, prevWorked[emp.ID],
				"worked hours must never decrease for %s", emp.ID)
			prevWorked[emp.ID] = emp.Overtime.WorkedThisWeekHours

			if emp.Status == workforce.StatusOnBreak {
				assert.NotNil(t, emp.CurrentSession.BreakStartTime, "on-break employee %s has no break start", emp.ID)
			}
			if emp.CurrentSession.LocationConsistencyScore != nil {
				assert.GreaterOrEqual(t, *emp.CurrentSession.LocationConsistencyScore, 0.2)
			}
			if emp.CurrentSession.Location != nil {
				label := emp.CurrentSession.Location.Label
				assert.Contains(t, []string{"Draper HQ", "Parking Lot - East"}, label)
			}
		}
	}
}

func TestTick_SameSeedSameOutcome(t *testing.T) {
	ctx := context.Background()

	run := func() []workforce.EmployeeRecord {
		sim, repo := newTestSimulator(42)
		for i := 0; i < 25; i++ {
			require.NoError(t, sim.Tick(ctx))
		}
		got, err := repo.Snapshot(ctx)
		require.NoError(t, err)
		return got
	}

	assert.Equal(t, run(), run())
}

func TestTick_EmptyRosterIsNoop(t *testing.T) {
	repo := memory.NewEmployeeRepository(nil)
	sim := New(repo, allEnabled(), rand.New(rand.NewSource(1)))

	assert.NoError(t, sim.Tick(context.Background()))
}
