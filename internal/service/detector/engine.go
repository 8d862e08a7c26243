package detector

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/exception"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
)

// Rule thresholds, in minutes unless noted.
const (
	behaviorDeviationSlack = 90 // beyond baseline shift length
	overtimeFireWindow     = 60 // minutes-to-threshold upper bound
	overtimeHighCutoff     = 20 // minutes-to-threshold HIGH cutoff
	breakSlackMed          = 10 // beyond baseline break length
	breakSlackHigh         = 25
	lateGraceAfterWindow   = 20 // after scheduled window end
	lateStaleAfterWindow   = 180
	lateHighAfterWindow    = 60
	coverageStaleAfter     = 120

	unassignedPctMed  = 5.0
	unassignedPctHigh = 10.0
	editCountCutoff   = 4
)

// Engine evaluates the workforce rule set. It holds no state; a pass is a
// pure function of (employees, settings, now).
type Engine struct {
}

func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs every rule over every employee and returns the ranked
// exception list. Employees are evaluated concurrently (rules have no
// cross-employee dependency); results are flattened in roster order before
// ranking so identical inputs always yield identical output.
func (e *Engine) Evaluate(ctx context.Context, employees []workforce.EmployeeRecord, settings workforce.OrgSettings, now time.Time) ([]exception.Exception, error) {
	perEmployee := make([][]exception.Exception, len(employees))

	g, _ := errgroup.WithContext(ctx)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			perEmployee[i] = e.evaluateEmployee(emp, settings, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []exception.Exception
	for _, bucket := range perEmployee {
		all = append(all, bucket...)
	}
	return Rank(all), nil
}

// evaluateEmployee runs the seven rules in fixed order. Each rule emits at
// most one exception; the scheduling block may emit two.
func (e *Engine) evaluateEmployee(emp workforce.EmployeeRecord, settings workforce.OrgSettings, now time.Time) []exception.Exception {
	var out []exception.Exception

	confidence := combineConfidence(emp)
	minsSinceClockIn, hasClockIn := minutesSince(now, emp.CurrentSession.ClockInTime)
	minsOnBreak, hasBreakStart := minutesSince(now, emp.CurrentSession.BreakStartTime)

	if emp.Status != workforce.StatusClockedOut && hasClockIn {
		expected := emp.Baselines.ShiftLengthMinutes
		if minsSinceClockIn > expected+behaviorDeviationSlack {
			out = append(out, build(emp, now, draft{
				exType:     exception.TypeBehaviorDeviation,
				title:      "Unusual shift length detected",
				summary:    fmt.Sprintf("%s is %d minutes beyond typical shift length.", emp.Name, minsSinceClockIn-expected),
				severity:   exception.SeverityMed,
				confidence: confidence,
				impactTags: []exception.ImpactTag{exception.ImpactPattern, exception.ImpactCost},
				triggers:   []string{"Shift duration exceeded personal baseline", "Repetition over recent period"},
			}))
		}
	}

	if emp.Status == workforce.StatusClockedIn && hasClockIn && settings.OvertimeEnabled {
		projected := emp.Overtime.WorkedThisWeekHours + float64(minsSinceClockIn)/60
		minutesToOvertime := int(math.Round((emp.Overtime.ThresholdHours - projected) * 60))
		if minutesToOvertime <= overtimeFireWindow && minutesToOvertime > 0 {
			severity := exception.SeverityMed
			if minutesToOvertime <= overtimeHighCutoff {
				severity = exception.SeverityHigh
			}
			out = append(out, build(emp, now, draft{
				exType:     exception.TypeOvertimeRisk,
				title:      "Approaching overtime threshold",
				summary:    fmt.Sprintf("%s is projected to hit overtime in ~%d minutes.", emp.Name, minutesToOvertime),
				severity:   severity,
				confidence: exception.ConfidenceHigh,
				impactTags: []exception.ImpactTag{exception.ImpactCost, exception.ImpactCompliance},
				triggers:   []string{"Overtime velocity projection", "Current shift trend"},
			}))
		}
	}

	if emp.Status == workforce.StatusOnBreak && hasBreakStart {
		allowed := emp.Baselines.BreakLengthMinutes
		if minsOnBreak > allowed+breakSlackMed {
			severity := exception.SeverityMed
			if minsOnBreak > allowed+breakSlackHigh {
				severity = exception.SeverityHigh
			}
			tags := []exception.ImpactTag{exception.ImpactPattern}
			if settings.SchedulingEnabled {
				tags = []exception.ImpactTag{exception.ImpactCoverage, exception.ImpactPattern}
			}
			out = append(out, build(emp, now, draft{
				exType:     exception.TypeBreakRisk,
				title:      "Break duration outside baseline",
				summary:    fmt.Sprintf("%s has been on break %dm (typical %dm).", emp.Name, minsOnBreak, allowed),
				severity:   severity,
				confidence: confidence,
				impactTags: tags,
				triggers:   []string{"Personal break baseline deviation"},
			}))
		}
	}

	if confidence == exception.ConfidenceLow {
		locationLabel := "Unknown location"
		if emp.CurrentSession.Location != nil {
			locationLabel = emp.CurrentSession.Location.Label
		}
		out = append(out, build(emp, now, draft{
			exType:     exception.TypePresenceConfidence,
			title:      "Low confidence in clock-in evidence",
			summary:    fmt.Sprintf("Signal confidence is low due to unusual device/location pattern (%s).", locationLabel),
			severity:   exception.SeverityMed,
			confidence: confidence,
			impactTags: []exception.ImpactTag{exception.ImpactCompliance, exception.ImpactPattern},
			triggers:   []string{"Device familiarity score below threshold", "Location consistency drift"},
		}))
	}

	var unassignedPct float64
	if emp.TimeIntegrity.SubmittedHours > 0 {
		unassignedPct = emp.TimeIntegrity.UnassignedHours / emp.TimeIntegrity.SubmittedHours * 100
	}
	if unassignedPct >= unassignedPctMed || emp.TimeIntegrity.EditsCount >= editCountCutoff {
		severity := exception.SeverityMed
		if unassignedPct >= unassignedPctHigh {
			severity = exception.SeverityHigh
		}
		out = append(out, build(emp, now, draft{
			exType:     exception.TypeTimeIntegrity,
			title:      "Time integrity health slipping",
			summary:    fmt.Sprintf("%.1f%% unassigned time and %d post-submission edits.", unassignedPct, emp.TimeIntegrity.EditsCount),
			severity:   severity,
			confidence: exception.ConfidenceHigh,
			impactTags: []exception.ImpactTag{exception.ImpactCompliance, exception.ImpactCost},
			triggers:   []string{"Unassigned hours ratio exceeded threshold", "Frequent post-submission edits"},
		}))
	}

	if settings.SchedulingEnabled {
		out = append(out, e.evaluateSchedule(emp, now)...)
	}

	return out
}

// evaluateSchedule covers the two schedule-dependent rules. Employees tagged
// UNSCHEDULED or PTO are exempt entirely.
func (e *Engine) evaluateSchedule(emp workforce.EmployeeRecord, now time.Time) []exception.Exception {
	if emp.ScheduleTag != nil {
		switch *emp.ScheduleTag {
		case workforce.TagUnscheduled, workforce.TagPTO:
			return nil
		}
	}
	if emp.Status != workforce.StatusClockedOut || emp.CurrentSession.ClockInTime != nil {
		return nil
	}

	var out []exception.Exception

	start := hhmmToMinutes(emp.Baselines.StartWindow.Start)
	end := hhmmToMinutes(emp.Baselines.StartWindow.End)
	nowMins := minutesOfDay(now)

	if nowMins > end+lateGraceAfterWindow && nowMins < end+lateStaleAfterWindow {
		severity := exception.SeverityMed
		if nowMins > end+lateHighAfterWindow {
			severity = exception.SeverityHigh
		}
		out = append(out, build(emp, now, draft{
			exType:     exception.TypeLateVsSchedule,
			title:      "Late against scheduled start",
			summary:    fmt.Sprintf("%s has not clocked in within scheduled window (%s-%s).", emp.Name, emp.Baselines.StartWindow.Start, emp.Baselines.StartWindow.End),
			severity:   severity,
			confidence: exception.ConfidenceMed,
			impactTags: []exception.ImpactTag{exception.ImpactCoverage, exception.ImpactCompliance},
			triggers:   []string{"No clock-in against schedule window"},
		}))
	}

	if nowMins > start && nowMins < end+coverageStaleAfter {
		out = append(out, build(emp, now, draft{
			exType:     exception.TypeCoverageGap,
			title:      "Coverage gap predicted",
			summary:    fmt.Sprintf("Potential coverage impact if %s remains unavailable.", emp.Name),
			severity:   exception.SeverityMed,
			confidence: exception.ConfidenceMed,
			impactTags: []exception.ImpactTag{exception.ImpactCoverage, exception.ImpactCost},
			triggers:   []string{"Schedule allocation risk"},
		}))
	}

	return out
}

type draft struct {
	exType     exception.Type
	title      string
	summary    string
	severity   exception.Severity
	confidence exception.ConfidenceLevel
	impactTags []exception.ImpactTag
	triggers   []string
}

// build stamps a draft with repetition count, escalated severity, a stable
// id and the denormalized employee snapshot.
func build(emp workforce.EmployeeRecord, now time.Time, d draft) exception.Exception {
	repetition := repetitionCount(emp, d.exType)
	return exception.Exception{
		ID:         fmt.Sprintf("%s-%s", emp.ID, d.exType),
		Type:       d.exType,
		Title:      d.title,
		Summary:    d.summary,
		Severity:   escalateSeverity(d.severity, repetition),
		Confidence: d.confidence,
		ImpactTags: d.impactTags,
		Employee: exception.EmployeeRef{
			ID:        emp.ID,
			Name:      emp.Name,
			Role:      emp.Role,
			AvatarURL: emp.AvatarURL,
		},
		CreatedAt:       now,
		RepetitionCount: repetition,
		Triggers:        d.triggers,
		Actions:         defaultActions(d.exType),
	}
}

// repetitionCount counts same-type anomalies in the employee's history.
func repetitionCount(emp workforce.EmployeeRecord, t exception.Type) int {
	count := 0
	for _, anomaly := range emp.History.RecentAnomalies {
		if anomaly.Type == string(t) {
			count++
		}
	}
	return count
}

// escalateSeverity upgrades severity for repeat offenders. Upgrade-only:
// the result never sorts below the base severity.
func escalateSeverity(base exception.Severity, repetition int) exception.Severity {
	switch {
	case repetition >= 3:
		return exception.SeverityHigh
	case repetition >= 2 && base == exception.SeverityLow:
		return exception.SeverityMed
	case repetition >= 2 && base == exception.SeverityMed:
		return exception.SeverityHigh
	}
	return base
}
