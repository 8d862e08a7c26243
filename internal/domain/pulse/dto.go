package pulse

import (
	"time"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/exception"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
)

// HeaderCounts are the aggregate tallies shown in the dashboard header.
// ApproachingOvertime is derived from the exception set, never recomputed
// from employee state.
type HeaderCounts struct {
	ClockedIn           int `json:"clocked_in"`
	OnBreak             int `json:"on_break"`
	ClockedOutRecently  int `json:"clocked_out_recently"`
	ApproachingOvertime int `json:"approaching_overtime"`
}

// HeaderResponse is the header endpoint payload.
type HeaderResponse struct {
	Counts         HeaderCounts `json:"counts"`
	StatusSentence string       `json:"status_sentence"`
}

// SnapshotResponse is the combined payload for the main dashboard view.
type SnapshotResponse struct {
	Employees      []workforce.EmployeeRecord `json:"employees"`
	Exceptions     []exception.Exception      `json:"exceptions"`
	Counts         HeaderCounts               `json:"counts"`
	StatusSentence string                     `json:"status_sentence"`
	LastUpdated    time.Time                  `json:"last_updated"`
}

// Snooze durations supported by the dashboard.
const (
	SnoozeHalfHour = "30m"
	SnoozeTwoHours = "2h"
	SnoozeToday    = "today"
)

type SnoozeRequest struct {
	Duration string `json:"duration"`
}

type SnoozeResponse struct {
	ExceptionID string    `json:"exception_id"`
	Until       time.Time `json:"until"`
}
