package exception

import (
	"time"
)

type Severity string

const (
	SeverityLow  Severity = "LOW"
	SeverityMed  Severity = "MED"
	SeverityHigh Severity = "HIGH"
)

// Rank maps severity onto the total order used for ranking (HIGH > MED > LOW).
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMed:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

type ConfidenceLevel string

const (
	ConfidenceLow  ConfidenceLevel = "LOW"
	ConfidenceMed  ConfidenceLevel = "MED"
	ConfidenceHigh ConfidenceLevel = "HIGH"
)

type Type string

const (
	TypeBehaviorDeviation  Type = "BEHAVIOR_DEVIATION"
	TypeOvertimeRisk       Type = "OVERTIME_RISK"
	TypePresenceConfidence Type = "PRESENCE_CONFIDENCE"
	TypeTimeIntegrity      Type = "TIME_INTEGRITY"
	TypeBreakRisk          Type = "BREAK_RISK"
	TypeCoverageGap        Type = "COVERAGE_GAP"
	TypeLateVsSchedule     Type = "LATE_VS_SCHEDULE"
)

type ImpactTag string

const (
	ImpactCost       ImpactTag = "Cost"
	ImpactCompliance ImpactTag = "Compliance"
	ImpactCoverage   ImpactTag = "Coverage"
	ImpactPattern    ImpactTag = "Pattern"
)

type ActionKey string

const (
	ActionReview  ActionKey = "REVIEW"
	ActionMessage ActionKey = "MESSAGE"
	ActionAdjust  ActionKey = "ADJUST"
	ActionVerify  ActionKey = "VERIFY"
	ActionApprove ActionKey = "APPROVE"
)

type ActionIntent string

const (
	IntentPrimary   ActionIntent = "primary"
	IntentSecondary ActionIntent = "secondary"
	IntentDanger    ActionIntent = "danger"
)

// Action is a suggested manager action attached to an exception.
type Action struct {
	ID        string       `json:"id"`
	Label     string       `json:"label"`
	Intent    ActionIntent `json:"intent,omitempty"`
	ActionKey ActionKey    `json:"action_key"`
}

// EmployeeRef is the denormalized employee snapshot taken at detection time.
type EmployeeRef struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Exception is the output of one triggered rule for one employee. Exceptions
// are ephemeral: every evaluation pass recomputes the full set and supersedes
// the previous one. The ID is stable per (employee, type) so consumers can
// key dismiss/snooze state across passes.
type Exception struct {
	ID              string          `json:"id"`
	Type            Type            `json:"type"`
	Title           string          `json:"title"`
	Summary         string          `json:"summary"`
	Severity        Severity        `json:"severity"`
	Confidence      ConfidenceLevel `json:"confidence"`
	ImpactTags      []ImpactTag     `json:"impact_tags"`
	Employee        EmployeeRef     `json:"employee"`
	CreatedAt       time.Time       `json:"created_at"`
	RepetitionCount int             `json:"repetition_count"`
	Triggers        []string        `json:"triggers"`
	Actions         []Action        `json:"actions"`
}
