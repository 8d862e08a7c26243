package workforce

import (
	"time"
)

type EmployeeStatus string

const (
	StatusClockedIn  EmployeeStatus = "CLOCKED_IN"
	StatusOnBreak    EmployeeStatus = "ON_BREAK"
	StatusClockedOut EmployeeStatus = "CLOCKED_OUT"
)

type ScheduleTag string

const (
	TagUnscheduled ScheduleTag = "UNSCHEDULED"
	TagPTO         ScheduleTag = "PTO"
)

type CaptureMethod string

const (
	MethodMobile CaptureMethod = "MOBILE"
	MethodKiosk  CaptureMethod = "KIOSK"
)

type SessionLocation struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}

// EmployeeSession describes the current clock session. Signal scores are
// in [0,1]; a nil score is treated as neutral by the detector.
type EmployeeSession struct {
	ClockInTime              *time.Time       `json:"clock_in_time,omitempty"`
	BreakStartTime           *time.Time       `json:"break_start_time,omitempty"`
	Method                   CaptureMethod    `json:"method"`
	Location                 *SessionLocation `json:"location,omitempty"`
	PhotoURL                 *string          `json:"photo_url,omitempty"`
	FaceMatchScore           *float64         `json:"face_match_score,omitempty"`
	LocationConsistencyScore *float64         `json:"location_consistency_score,omitempty"`
	DeviceFamiliarityScore   *float64         `json:"device_familiarity_score,omitempty"`
}

// StartWindow is the scheduled start window in "HH:MM" local time.
type StartWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EmployeeBaselines holds the per-employee expected behavior used as the
// reference for deviation detection.
type EmployeeBaselines struct {
	StartWindow        StartWindow `json:"start_window"`
	ShiftLengthMinutes int         `json:"shift_length_minutes"`
	BreakLengthMinutes int         `json:"break_length_minutes"`
	UsualLocationLabel string      `json:"usual_location_label"`
}

type OvertimeState struct {
	ThresholdHours      float64 `json:"threshold_hours"`
	WorkedThisWeekHours float64 `json:"worked_this_week_hours"`
}

type TimeIntegrityState struct {
	UnassignedHours float64 `json:"unassigned_hours"`
	EditsCount      int     `json:"edits_count"`
	SubmittedHours  float64 `json:"submitted_hours"`
}

// HistoricalAnomaly records a past exception raised for the employee.
// The Type value mirrors exception.Type; kept as a string here so the
// entity package stays dependency-free.
type HistoricalAnomaly struct {
	Type       string    `json:"type"`
	HappenedAt time.Time `json:"happened_at"`
}

type EmployeeHistory struct {
	RecentAnomalies []HistoricalAnomaly `json:"recent_anomalies"`
}

type EmployeeRecord struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Role           string             `json:"role"`
	AvatarURL      *string            `json:"avatar_url,omitempty"`
	ScheduleTag    *ScheduleTag       `json:"schedule_tag,omitempty"`
	Status         EmployeeStatus     `json:"status"`
	CurrentSession EmployeeSession    `json:"current_session"`
	Baselines      EmployeeBaselines  `json:"baselines"`
	Overtime       OvertimeState      `json:"overtime"`
	TimeIntegrity  TimeIntegrityState `json:"time_integrity"`
	History        EmployeeHistory    `json:"history"`
	LastClockOutAt *time.Time         `json:"last_clock_out_at,omitempty"`
}

// OrgSettings gates which rule categories are active. Read-only during
// evaluation.
type OrgSettings struct {
	SchedulingEnabled bool `json:"scheduling_enabled"`
	OvertimeEnabled   bool `json:"overtime_enabled"`
	KioskPhotoEnabled bool `json:"kiosk_photo_enabled"`
	GeofenceEnabled   bool `json:"geofence_enabled"`
}

// Clone returns a deep copy so callers can mutate records without
// affecting the store's copy.
func (e EmployeeRecord) Clone() EmployeeRecord {
	out := e
	out.AvatarURL = clonePtr(e.AvatarURL)
	out.ScheduleTag = clonePtr(e.ScheduleTag)
	out.LastClockOutAt = clonePtr(e.LastClockOutAt)

	out.CurrentSession.ClockInTime = clonePtr(e.CurrentSession.ClockInTime)
	out.CurrentSession.BreakStartTime = clonePtr(e.CurrentSession.BreakStartTime)
	out.CurrentSession.Location = clonePtr(e.CurrentSession.Location)
	out.CurrentSession.PhotoURL = clonePtr(e.CurrentSession.PhotoURL)
	out.CurrentSession.FaceMatchScore = clonePtr(e.CurrentSession.FaceMatchScore)
	out.CurrentSession.LocationConsistencyScore = clonePtr(e.CurrentSession.LocationConsistencyScore)
	out.CurrentSession.DeviceFamiliarityScore = clonePtr(e.CurrentSession.DeviceFamiliarityScore)

	if e.History.RecentAnomalies != nil {
		out.History.RecentAnomalies = make([]HistoricalAnomaly, len(e.History.RecentAnomalies))
		copy(out.History.RecentAnomalies, e.History.RecentAnomalies)
	}
	return out
}

// CloneAll deep-copies a roster.
func CloneAll(employees []EmployeeRecord) []EmployeeRecord {
	out := make([]EmployeeRecord, len(employees))
	for i, e := range employees {
		out[i] = e.Clone()
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
