// Package steps implements the order-form wizard sequencer. It decides which
// steps are visible for a given package selection, how far a customer may
// navigate, and how positions translate between the visible list and the
// canonical full list.
//
// All functions are pure and never fail: indices outside the valid range are
// clamped and transitions that would run off either end return the position
// unchanged.
package steps

// ID identifies a wizard step.
type ID string

// The eight canonical wizard steps, in order.
const (
	Lead          ID = "lead"
	Communication ID = "communication"
	Package       ID = "package"
	ByDozen       ID = "byDozen"
	Color         ID = "color"
	Event         ID = "event"
	Designs       ID = "designs"
	Pickup        ID = "pickup"
)

// byDozenPackageType is the package selection that makes the ByDozen step
// visible. The value matches the draft form's package-type enum member.
const byDozenPackageType = "byDozen"

// Definition describes one wizard step.
type Definition struct {
	ID    ID
	Title string
}

// All returns the canonical ordered list of wizard steps. The order of this
// list is the single source of truth for full-index numbering; positions are
// always derived from it by step id, never hardcoded.
func All() []Definition {
	return []Definition{
		{ID: Lead, Title: "Contact"},
		{ID: Communication, Title: "Communication"},
		{ID: Package, Title: "Package"},
		{ID: ByDozen, Title: "By the Dozen"},
		{ID: Color, Title: "Colors"},
		{ID: Event, Title: "Event"},
		{ID: Designs, Title: "Designs"},
		{ID: Pickup, Title: "Pickup"},
	}
}

// Visible returns the step list filtered for the given package type. The
// ByDozen step is dropped unless the package type equals "byDozen"; no other
// step is ever hidden and order is preserved.
func Visible(packageType string) []Definition {
	all := All()
	if packageType == byDozenPackageType {
		return all
	}

	visible := make([]Definition, 0, len(all)-1)
	for _, def := range all {
		if def.ID == ByDozen {
			continue
		}
		visible = append(visible, def)
	}
	return visible
}

// Status is a step's state relative to the current visible position.
type Status int

const (
	// Pending means the step lies after the current visible position.
	Pending Status = iota
	// Current means the step is the one at the current visible position.
	Current
	// Completed means the step lies before the current visible position.
	Completed
)

// String returns the lowercase wire name of the status.
func (s Status) String() string {
	switch s {
	case Current:
		return "current"
	case Completed:
		return "completed"
	default:
		return "pending"
	}
}

// StatusAt classifies the step at visibleIndex against the current visible
// position: earlier steps are completed, the equal one is current, later ones
// are pending.
func StatusAt(visibleIndex, currentVisibleIndex int) Status {
	switch {
	case visibleIndex < currentVisibleIndex:
		return Completed
	case visibleIndex == currentVisibleIndex:
		return Current
	default:
		return Pending
	}
}

// FullIndexOf returns the position of a step in the canonical list, or -1 for
// an unknown id.
func FullIndexOf(id ID) int {
	for i, def := range All() {
		if def.ID == id {
			return i
		}
	}
	return -1
}

// VisibleIndexOf returns the position of a step in the visible list for the
// given package type, or -1 when the step is hidden or unknown.
func VisibleIndexOf(id ID, packageType string) int {
	for i, def := range Visible(packageType) {
		if def.ID == id {
			return i
		}
	}
	return -1
}

// FullToVisible translates a full-list position to a visible-list position.
// Translation is by step id. When the step at fullIndex is hidden (the ByDozen
// step after the package selection changed away from by-dozen), the nearest
// preceding visible step's position is returned. Out-of-range indices clamp.
func FullToVisible(fullIndex int, packageType string) int {
	all := All()
	fullIndex = clamp(fullIndex, 0, len(all)-1)

	for i := fullIndex; i >= 0; i-- {
		if v := VisibleIndexOf(all[i].ID, packageType); v >= 0 {
			return v
		}
	}
	return 0
}

// VisibleToFull translates a visible-list position to the canonical full-list
// position of the same step. Out-of-range indices clamp.
func VisibleToFull(visibleIndex int, packageType string) int {
	visible := Visible(packageType)
	visibleIndex = clamp(visibleIndex, 0, len(visible)-1)
	return FullIndexOf(visible[visibleIndex].ID)
}

// Next returns the full-list position of the step after currentFullIndex,
// skipping the ByDozen step unless the by-dozen package was chosen. A step at
// the end of the visible list stays where it is.
func Next(currentFullIndex int, packageType string) int {
	visible := Visible(packageType)
	v := FullToVisible(currentFullIndex, packageType)
	if v >= len(visible)-1 {
		return currentFullIndex
	}
	return VisibleToFull(v+1, packageType)
}

// Prev returns the full-list position of the step before currentFullIndex,
// applying the same ByDozen skip rule in reverse. The first step stays where
// it is.
func Prev(currentFullIndex int, packageType string) int {
	v := FullToVisible(currentFullIndex, packageType)
	if v <= 0 {
		return currentFullIndex
	}
	return VisibleToFull(v-1, packageType)
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
