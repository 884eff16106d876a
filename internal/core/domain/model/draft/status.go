package draft

import (
	"fmt"

	"treats/internal/pkg/errs"
)

// Status represents the lifecycle state of a draft.
//
// State transitions:
//
//	StatusDraft ──> StatusSubmitted
//
// The transition is one-directional: a submitted draft never reopens, and a
// second submission attempt fails rather than returning the earlier result.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status while the customer is still filling
	// in the order form.
	StatusDraft

	// StatusSubmitted indicates the draft has been converted into an order.
	// This is a final state with no further transitions allowed.
	StatusSubmitted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusDraft:     "draft",
		StatusSubmitted: "submitted",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:     "draft",
		StatusSubmitted: "submitted",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are StatusDraft and StatusSubmitted.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString maps a stored wire name back to its Status value.
// Unrecognized names map to StatusUnknown.
func StatusFromString(value string) Status {
	for status, name := range getStatusStrings() {
		if name == value {
			return status
		}
	}
	return StatusUnknown
}

// Submit transitions the status to StatusSubmitted.
//
// The only valid transition is StatusDraft -> StatusSubmitted. Any other
// starting point fails with a validation error whose message names the
// current status, so clients can tell a double submit from a fresh one.
func (s Status) Submit() (Status, error) {
	if s != StatusDraft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"draft status",
			fmt.Errorf("draft already submitted: current status is %s", s.String()),
		)
	}

	return StatusSubmitted, nil
}
