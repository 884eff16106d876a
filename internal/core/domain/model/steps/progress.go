package steps

// Snapshot is the subset of draft form state the sequencer inspects when
// deciding whether a step holds data and whether navigation may jump forward.
// The draft aggregate produces it; the sequencer never mutates it.
type Snapshot struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string

	CommunicationMethod string
	PackageType         string

	RiceKrispies int
	Oreos        int
	Pretzels     int
	Marshmallows int

	ColorScheme string
	EventType   string
	Theme       string
	DesignNotes string

	SelectedDesigns []string

	PickupDate string
	PickupTime string

	VisitedSteps []string
}

// Visited reports whether the snapshot's visited-step set contains id.
func (s Snapshot) Visited(id ID) bool {
	for _, v := range s.VisitedSteps {
		if v == string(id) {
			return true
		}
	}
	return false
}

// HasData reports whether the customer has entered anything on the given step.
// Each step has its own predicate over the form fields; unknown ids report
// false.
func HasData(id ID, snap Snapshot) bool {
	switch id {
	case Lead:
		return snap.FirstName != "" || snap.LastName != "" || snap.Email != "" || snap.Phone != ""
	case Communication:
		return snap.CommunicationMethod != ""
	case Package:
		return snap.PackageType != ""
	case ByDozen:
		if snap.PackageType != byDozenPackageType {
			return false
		}
		return snap.RiceKrispies > 0 || snap.Oreos > 0 || snap.Pretzels > 0 || snap.Marshmallows > 0
	case Color:
		return snap.ColorScheme != ""
	case Event:
		return snap.EventType != "" || snap.Theme != ""
	case Designs:
		return len(snap.SelectedDesigns) > 0 || snap.DesignNotes != ""
	case Pickup:
		return snap.PickupDate != "" && snap.PickupTime != ""
	default:
		return false
	}
}

// IsCompleted reports whether a step counts as done for progress purposes:
// it either holds data or its id is a member of the visited-step set. The OR
// matters: a customer can advance past an optional step without entering
// anything and it still counts.
func IsCompleted(id ID, snap Snapshot) bool {
	return HasData(id, snap) || snap.Visited(id)
}

// CompletedCount returns how many of the currently visible steps count as
// completed.
func CompletedCount(snap Snapshot) int {
	n := 0
	for _, def := range Visible(snap.PackageType) {
		if IsCompleted(def.ID, snap) {
			n++
		}
	}
	return n
}

// IsReachable reports whether the step at targetVisibleIndex may be navigated
// to from currentVisibleIndex. Anything at or before the current position is
// always reachable. A forward jump requires an unbroken chain: every step in
// the closed range [current, target] must be completed.
func IsReachable(targetVisibleIndex, currentVisibleIndex int, snap Snapshot) bool {
	visible := Visible(snap.PackageType)
	if targetVisibleIndex < 0 || targetVisibleIndex >= len(visible) {
		return false
	}
	if targetVisibleIndex <= currentVisibleIndex {
		return true
	}

	from := clamp(currentVisibleIndex, 0, len(visible)-1)
	for i := from; i <= targetVisibleIndex; i++ {
		if !IsCompleted(visible[i].ID, snap) {
			return false
		}
	}
	return true
}
