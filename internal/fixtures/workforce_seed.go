package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/exception"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string       { return &s }
func float64Ptr(f float64) *float64 { return &f }
func timePtr(t time.Time) *time.Time {
	return &t
}
func tagPtr(t workforce.ScheduleTag) *workforce.ScheduleTag { return &t }

// ==========================================
// DEFAULT ORG SETTINGS
// ==========================================

// DefaultOrgSettings enables every rule category.
func DefaultOrgSettings() workforce.OrgSettings {
	return workforce.OrgSettings{
		SchedulingEnabled: true,
		OvertimeEnabled:   true,
		KioskPhotoEnabled: true,
		GeofenceEnabled:   true,
	}
}

// ==========================================
// SEED ROSTER
// ==========================================

// SeedEmployees returns the demo roster with session timestamps anchored to
// now, so the seeded states trip the intended rules right after boot.
func SeedEmployees(now time.Time) []workforce.EmployeeRecord {
	hq := &workforce.SessionLocation{Lat: 40.5247, Lng: -111.8638, Label: "Draper HQ"}
	parkingLot := &workforce.SessionLocation{Lat: 40.5251, Lng: -111.8601, Label: "Parking Lot - East"}

	return []workforce.EmployeeRecord{
		{
			// Approaching the weekly overtime threshold in ~45 minutes.
			ID:     uuid.NewString(),
			Name:   "Maya Chen",
			Role:   "Shift Supervisor",
			Status: workforce.StatusClockedIn,
			CurrentSession: workforce.EmployeeSession{
				ClockInTime:              timePtr(now.Add(-45 * time.Minute)),
				Method:                   workforce.MethodMobile,
				Location:                 hq,
				FaceMatchScore:           float64Ptr(0.93),
				LocationConsistencyScore: float64Ptr(0.88),
				DeviceFamiliarityScore:   float64Ptr(0.95),
			},
			Baselines: workforce.EmployeeBaselines{
				StartWindow:        workforce.StartWindow{Start: "08:00", End: "09:00"},
				ShiftLengthMinutes: 480,
				BreakLengthMinutes: 30,
				UsualLocationLabel: "Draper HQ",
			},
			Overtime:      workforce.OvertimeState{ThresholdHours: 40, WorkedThisWeekHours: 38.5},
			TimeIntegrity: workforce.TimeIntegrityState{UnassignedHours: 0.5, EditsCount: 1, SubmittedHours: 38},
			History: workforce.EmployeeHistory{RecentAnomalies: []workforce.HistoricalAnomaly{
				{Type: string(exception.TypeOvertimeRisk), HappenedAt: now.Add(-6 * 24 * time.Hour)},
			}},
		},
		{
			// On break well past the personal baseline.
			ID:     uuid.NewString(),
			Name:   "Darnell Washington",
			Role:   "Warehouse Associate",
			Status: workforce.StatusOnBreak,
			CurrentSession: workforce.EmployeeSession{
				ClockInTime:              timePtr(now.Add(-5 * time.Hour)),
				BreakStartTime:           timePtr(now.Add(-48 * time.Minute)),
				Method:                   workforce.MethodKiosk,
				Location:                 hq,
				PhotoURL:                 strPtr("https://cdn.example.com/kiosk/darnell.jpg"),
				FaceMatchScore:           float64Ptr(0.9),
				LocationConsistencyScore: float64Ptr(0.92),
				DeviceFamiliarityScore:   float64Ptr(0.85),
			},
			Baselines: workforce.EmployeeBaselines{
				StartWindow:        workforce.StartWindow{Start: "06:00", End: "07:00"},
				ShiftLengthMinutes: 510,
				BreakLengthMinutes: 30,
				UsualLocationLabel: "Draper HQ",
			},
			Overtime:      workforce.OvertimeState{ThresholdHours: 40, WorkedThisWeekHours: 31.2},
			TimeIntegrity: workforce.TimeIntegrityState{UnassignedHours: 0.2, EditsCount: 0, SubmittedHours: 30},
			History:       workforce.EmployeeHistory{},
		},
		{
			// Ten hours into an eight-hour baseline shift, two prior
			// occurrences on record.
			ID:     uuid.NewString(),
			Name:   "Priya Raghavan",
			Role:   "Line Lead",
			Status: workforce.StatusClockedIn,
			CurrentSession: workforce.EmployeeSession{
				ClockInTime:              timePtr(now.Add(-10 * time.Hour)),
				Method:                   workforce.MethodMobile,
				Location:                 hq,
				FaceMatchScore:           float64Ptr(0.87),
				LocationConsistencyScore: float64Ptr(0.81),
				DeviceFamiliarityScore:   float64Ptr(0.9),
			},
			Baselines: workforce.EmployeeBaselines{
				StartWindow:        workforce.StartWindow{Start: "07:00", End: "08:00"},
				ShiftLengthMinutes: 480,
				BreakLengthMinutes: 45,
				UsualLocationLabel: "Draper HQ",
			},
			Overtime:      workforce.OvertimeState{ThresholdHours: 44, WorkedThisWeekHours: 29.5},
			TimeIntegrity: workforce.TimeIntegrityState{UnassignedHours: 0.8, EditsCount: 2, SubmittedHours: 28},
			History: workforce.EmployeeHistory{RecentAnomalies: []workforce.HistoricalAnomaly{
				{Type: string(exception.TypeBehaviorDeviation), HappenedAt: now.Add(-9 * 24 * time.Hour)},
				{Type: string(exception.TypeBehaviorDeviation), HappenedAt: now.Add(-3 * 24 * time.Hour)},
			}},
		},
		{
			// Clocked in from an unusual device and location.
			ID:     uuid.NewString(),
			Name:   "Tom Oduya",
			Role:   "Field Technician",
			Status: workforce.StatusClockedIn,
			CurrentSession: workforce.EmployeeSession{
				ClockInTime:              timePtr(now.Add(-2 * time.Hour)),
				Method:                   workforce.MethodMobile,
				Location:                 parkingLot,
				FaceMatchScore:           float64Ptr(0.3),
				LocationConsistencyScore: float64Ptr(0.35),
				DeviceFamiliarityScore:   float64Ptr(0.4),
			},
			Baselines: workforce.EmployeeBaselines{
				StartWindow:        workforce.StartWindow{Start: "09:00", End: "10:00"},
				ShiftLengthMinutes: 480,
				BreakLengthMinutes: 30,
				UsualLocationLabel: "Draper HQ",
			},
			Overtime:      workforce.OvertimeState{ThresholdHours: 40, WorkedThisWeekHours: 22.7},
			TimeIntegrity: workforce.TimeIntegrityState{UnassignedHours: 0.1, EditsCount: 1, SubmittedHours: 22},
			History: workforce.EmployeeHistory{RecentAnomalies: []workforce.HistoricalAnomaly{
				{Type: string(exception.TypePresenceConfidence), HappenedAt: now.Add(-12 * 24 * time.Hour)},
			}},
		},
		{
			// Not clocked in against schedule; unassigned hours creeping up.
			ID:     uuid.NewString(),
			Name:   "Hannah Kessler",
			Role:   "Customer Support",
			Status: workforce.StatusClockedOut,
			CurrentSession: workforce.EmployeeSession{
				Method: workforce.MethodMobile,
			},
			Baselines: workforce.EmployeeBaselines{
				StartWindow:        workforce.StartWindow{Start: "08:00", End: "09:00"},
				ShiftLengthMinutes: 450,
				BreakLengthMinutes: 30,
				UsualLocationLabel: "Draper HQ",
			},
			Overtime:       workforce.OvertimeState{ThresholdHours: 40, WorkedThisWeekHours: 18.4},
			TimeIntegrity:  workforce.TimeIntegrityState{UnassignedHours: 6, EditsCount: 1, SubmittedHours: 100},
			History:        workforce.EmployeeHistory{},
			LastClockOutAt: timePtr(now.Add(-16 * time.Hour)),
		},
		{
			// Heavy post-submission editing.
			ID:     uuid.NewString(),
			Name:   "Jae Park",
			Role:   "Inventory Clerk",
			Status: workforce.StatusClockedOut,
			CurrentSession: workforce.EmployeeSession{
				Method: workforce.MethodKiosk,
			},
			Baselines: workforce.EmployeeBaselines{
				StartWindow:        workforce.StartWindow{Start: "14:00", End: "15:00"},
				ShiftLengthMinutes: 480,
				BreakLengthMinutes: 30,
				UsualLocationLabel: "Draper HQ",
			},
			Overtime:       workforce.OvertimeState{ThresholdHours: 40, WorkedThisWeekHours: 25.1},
			TimeIntegrity:  workforce.TimeIntegrityState{UnassignedHours: 1.1, EditsCount: 5, SubmittedHours: 24},
			History:        workforce.EmployeeHistory{},
			LastClockOutAt: timePtr(now.Add(-20 * time.Minute)),
		},
		{
			// On approved PTO; exempt from schedule rules.
			ID:          uuid.NewString(),
			Name:        "Luis Moreno",
			Role:        "Forklift Operator",
			ScheduleTag: tagPtr(workforce.TagPTO),
			Status:      workforce.StatusClockedOut,
			CurrentSession: workforce.EmployeeSession{
				Method: workforce.MethodMobile,
			},
			Baselines: workforce.EmployeeBaselines{
				StartWindow:        workforce.StartWindow{Start: "06:00", End: "07:00"},
				ShiftLengthMinutes: 480,
				BreakLengthMinutes: 30,
				UsualLocationLabel: "Draper HQ",
			},
			Overtime:      workforce.OvertimeState{ThresholdHours: 40, WorkedThisWeekHours: 32},
			TimeIntegrity: workforce.TimeIntegrityState{UnassignedHours: 0, EditsCount: 0, SubmittedHours: 32},
			History:       workforce.EmployeeHistory{},
		},
		{
			// Picking up an unscheduled shift.
			ID:          uuid.NewString(),
			Name:        "Sofia Petrova",
			Role:        "Warehouse Associate",
			ScheduleTag: tagPtr(workforce.TagUnscheduled),
			Status:      workforce.StatusClockedIn,
			CurrentSession: workforce.EmployeeSession{
				ClockInTime:              timePtr(now.Add(-2 * time.Hour)),
				Method:                   workforce.MethodKiosk,
				Location:                 hq,
				PhotoURL:                 strPtr("https://cdn.example.com/kiosk/sofia.jpg"),
				FaceMatchScore:           float64Ptr(0.84),
				LocationConsistencyScore: float64Ptr(0.79),
				DeviceFamiliarityScore:   float64Ptr(0.66),
			},
			Baselines: workforce.EmployeeBaselines{
				StartWindow:        workforce.StartWindow{Start: "10:00", End: "11:00"},
				ShiftLengthMinutes: 420,
				BreakLengthMinutes: 30,
				UsualLocationLabel: "Draper HQ",
			},
			Overtime:      workforce.OvertimeState{ThresholdHours: 40, WorkedThisWeekHours: 12.6},
			TimeIntegrity: workforce.TimeIntegrityState{UnassignedHours: 0.3, EditsCount: 0, SubmittedHours: 12},
			History:       workforce.EmployeeHistory{},
		},
	}
}
