package detector

import (
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/exception"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
)

// neutralScore substitutes for a signal the capture method did not produce.
const neutralScore = 0.5

// confidenceFromScore maps a [0,1] score onto a confidence level.
func confidenceFromScore(score float64) exception.ConfidenceLevel {
	switch {
	case score >= 0.75:
		return exception.ConfidenceHigh
	case score >= 0.45:
		return exception.ConfidenceMed
	default:
		return exception.ConfidenceLow
	}
}

// combineConfidence averages the three session signal scores (device
// familiarity, location consistency, face match) and maps the result.
func combineConfidence(emp workforce.EmployeeRecord) exception.ConfidenceLevel {
	session := emp.CurrentSession
	sum := scoreOrNeutral(session.DeviceFamiliarityScore) +
		scoreOrNeutral(session.LocationConsistencyScore) +
		scoreOrNeutral(session.FaceMatchScore)
	return confidenceFromScore(sum / 3)
}

func scoreOrNeutral(score *float64) float64 {
	if score == nil {
		return neutralScore
	}
	return *score
}
