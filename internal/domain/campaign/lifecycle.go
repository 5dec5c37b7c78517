package campaign

import (
	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
)

// Operation describes a category of campaign operation for lifecycle checks.
type Operation int

const (
	// OpUnspecified represents an invalid operation.
	OpUnspecified Operation = iota
	// OpApprove represents the admin approving a pending campaign.
	OpApprove
	// OpReject represents the admin rejecting (and removing) a pending campaign.
	OpReject
	// OpEnroll represents a player taking a seat.
	OpEnroll
	// OpStart represents the owning master starting play.
	OpStart
	// OpFinish represents the owning master closing the campaign.
	OpFinish
	// OpMutate represents owner edits to name, system, or description.
	OpMutate
	// OpSchedule represents adding a session timestamp to the calendar.
	OpSchedule
)

// ErrStatusDisallowsOperation indicates a lifecycle state that disallows the
// requested operation.
var ErrStatusDisallowsOperation = apperrors.New(apperrors.CodeCampaignStatusDisallowsOp, "campaign status does not allow operation")

// ValidateOperation ensures the campaign's lifecycle state allows the
// requested operation. Starting an already-started campaign is permitted;
// the transition is harmless and the original flow never guarded it.
func ValidateOperation(c *Campaign, op Operation) error {
	switch op {
	case OpApprove, OpReject:
		if c.Status != StatusPending {
			return statusOpError(c, op)
		}
		return nil
	case OpEnroll, OpStart, OpFinish, OpSchedule:
		if !c.Active() {
			return statusOpError(c, op)
		}
		return nil
	case OpMutate:
		if c.Finished {
			return statusOpError(c, op)
		}
		return nil
	default:
		return statusOpError(c, op)
	}
}

func statusOpError(c *Campaign, op Operation) error {
	return apperrors.WithMetadata(
		apperrors.CodeCampaignStatusDisallowsOp,
		"campaign status does not allow operation",
		map[string]string{
			"status":   string(c.Status),
			"finished": boolLabel(c.Finished),
			"op":       opLabel(op),
		},
	)
}

func opLabel(op Operation) string {
	switch op {
	case OpApprove:
		return "approve"
	case OpReject:
		return "reject"
	case OpEnroll:
		return "enroll"
	case OpStart:
		return "start"
	case OpFinish:
		return "finish"
	case OpMutate:
		return "mutate"
	case OpSchedule:
		return "schedule"
	default:
		return "unspecified"
	}
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
