package detector

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/exception"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/pulse"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
)

const recentClockOutWindow = 60 * time.Minute

// SummarizeHeader derives the dashboard header from the roster and the
// exception set of the same pass. ApproachingOvertime counts OVERTIME_RISK
// exceptions rather than re-projecting employee hours, so header and feed
// can never disagree.
func (e *Engine) SummarizeHeader(employees []workforce.EmployeeRecord, exceptions []exception.Exception, now time.Time) (pulse.HeaderCounts, string) {
	var counts pulse.HeaderCounts

	for _, emp := range employees {
		switch emp.Status {
		case workforce.StatusClockedIn:
			counts.ClockedIn++
		case workforce.StatusOnBreak:
			counts.OnBreak++
		}
		if emp.LastClockOutAt != nil && now.Sub(*emp.LastClockOutAt) < recentClockOutWindow {
			counts.ClockedOutRecently++
		}
	}

	highIssues := 0
	for _, ex := range exceptions {
		if ex.Type == exception.TypeOvertimeRisk {
			counts.ApproachingOvertime++
		}
		if ex.Severity == exception.SeverityHigh {
			highIssues++
		}
	}

	statusSentence := "Stable"
	switch {
	case counts.ApproachingOvertime >= 2:
		statusSentence = "Overtime risk building"
	case highIssues > 0:
		statusSentence = fmt.Sprintf("%d high-priority issues need attention", highIssues)
	case len(exceptions) > 0:
		statusSentence = fmt.Sprintf("%d issues need attention", len(exceptions))
	}

	return counts, statusSentence
}
