package detector

import (
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/exception"
)

// defaultActions returns the suggested manager actions for an exception type.
func defaultActions(t exception.Type) []exception.Action {
	switch t {
	case exception.TypeOvertimeRisk:
		return []exception.Action{
			{ID: "approve-adjustment", Label: "Adjust Shift", ActionKey: exception.ActionAdjust, Intent: exception.IntentPrimary},
			{ID: "msg-employee", Label: "Message Employee", ActionKey: exception.ActionMessage, Intent: exception.IntentSecondary},
		}
	case exception.TypeTimeIntegrity:
		return []exception.Action{
			{ID: "review-timecard", Label: "Review Timecard", ActionKey: exception.ActionReview, Intent: exception.IntentPrimary},
			{ID: "ask-clarify", Label: "Request Clarification", ActionKey: exception.ActionMessage, Intent: exception.IntentSecondary},
		}
	case exception.TypePresenceConfidence:
		return []exception.Action{
			{ID: "verify-presence", Label: "Verify Presence", ActionKey: exception.ActionVerify, Intent: exception.IntentPrimary},
			{ID: "message-location", Label: "Message Employee", ActionKey: exception.ActionMessage, Intent: exception.IntentSecondary},
		}
	case exception.TypeBreakRisk:
		return []exception.Action{
			{ID: "nudge-return", Label: "Nudge Return", ActionKey: exception.ActionMessage, Intent: exception.IntentPrimary},
		}
	default:
		return []exception.Action{
			{ID: "review", Label: "Review", ActionKey: exception.ActionReview, Intent: exception.IntentPrimary},
		}
	}
}
