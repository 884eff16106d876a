// Package wizard holds the in-memory editing session for the multi-step order
// form. A session works on a clone of the draft's form: the UI applies changes
// and navigates steps optimistically, then either commits the working copy for
// persistence or rolls it back to the last committed state.
package wizard

import (
	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/steps"
	"treats/internal/pkg/errs"
)

// ErrStepIsNotReachable is returned when jumping to a forward step whose
// prerequisite chain is incomplete.
var ErrStepIsNotReachable = errs.NewValueIsInvalidError("step is not reachable")

// Session is the optimistic editing state between two persistence calls.
// The committed copy only moves forward on Commit; everything else operates on
// the working copy.
type Session struct {
	committed draft.FormData
	working   draft.FormData
	dirty     bool
}

// NewSession opens a session over a normalized clone of the given form.
func NewSession(form draft.FormData) *Session {
	form = form.Normalize()
	return &Session{
		committed: form,
		working:   form,
	}
}

// Form returns the current working copy.
func (s *Session) Form() draft.FormData {
	return s.working
}

// Dirty reports whether the working copy has diverged from the committed one.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Apply replaces the whole working form with a normalized copy of the given
// data. The step pointer and visited set come from the incoming form, exactly
// as a whole-form save would persist them.
func (s *Session) Apply(form draft.FormData) {
	s.working = form.Normalize()
	s.dirty = true
}

// Advance moves the step pointer to the next visible step and returns its full
// index. Both the departed and the entered step count as visited. At the last
// step the pointer stays put.
func (s *Session) Advance() int {
	current := s.working.CurrentStep
	next := steps.Next(current, s.working.PackageType)
	s.moveTo(next, stepID(current), stepID(next))
	return next
}

// Retreat moves the step pointer to the previous visible step and returns its
// full index. Only the entered step is newly visited; going back never marks
// progress on the step being left. At the first step the pointer stays put.
func (s *Session) Retreat() int {
	prev := steps.Prev(s.working.CurrentStep, s.working.PackageType)
	s.moveTo(prev, stepID(prev))
	return prev
}

// GoTo jumps directly to the step at the given full index.
//
// Backward jumps always succeed. A forward jump requires every step between
// the current one and the target (inclusive) to be completed; otherwise
// ErrStepIsNotReachable comes back and the session is unchanged. Indices
// outside the step range fail with a range error.
func (s *Session) GoTo(target int) error {
	maxStep := len(steps.All()) - 1
	if target < 0 || target > maxStep {
		return errs.NewValueIsOutOfRangeError("step", target, 0, maxStep)
	}

	packageType := s.working.PackageType
	targetVisible := steps.FullToVisible(target, packageType)
	currentVisible := steps.FullToVisible(s.working.CurrentStep, packageType)

	if !steps.IsReachable(targetVisible, currentVisible, s.working.StepSnapshot()) {
		return ErrStepIsNotReachable
	}

	// The target may be a hidden step; land on its visible stand-in.
	landing := steps.VisibleToFull(targetVisible, packageType)
	s.moveTo(landing, stepID(s.working.CurrentStep), stepID(landing))
	return nil
}

// Commit promotes the working copy to committed state and returns it.
// The caller is responsible for persisting the returned form.
func (s *Session) Commit() draft.FormData {
	s.committed = s.working
	s.dirty = false
	return s.committed
}

// Rollback discards the working copy, restoring the last committed state.
func (s *Session) Rollback() {
	s.working = s.committed
	s.dirty = false
}

func (s *Session) moveTo(fullIndex int, visited ...string) {
	s.working.CurrentStep = fullIndex
	s.working.VisitedSteps = appendVisited(s.working.VisitedSteps, visited...)
	s.dirty = true
}

func stepID(fullIndex int) string {
	return string(steps.All()[fullIndex].ID)
}

// appendVisited builds a fresh normalized visited list. A fresh slice keeps
// the committed copy's backing array out of reach of later appends.
func appendVisited(visited []string, ids ...string) []string {
	out := make([]string, 0, len(visited)+len(ids))
	out = append(out, visited...)
	out = append(out, ids...)
	return draft.NormalizeVisitedSteps(out)
}
