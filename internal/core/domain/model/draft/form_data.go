package draft

import (
	"strings"

	"treats/internal/core/domain/model/steps"
)

// Members of the communication-preference enumeration. The empty string is a
// valid "unset" member.
const (
	CommunicationEmail = "email"
	CommunicationText  = "text"
)

// Members of the package-type enumeration. The empty string is a valid "unset"
// member.
const (
	PackageSmall   = "small"
	PackageMedium  = "medium"
	PackageLarge   = "large"
	PackageXL      = "xl"
	PackageByDozen = "byDozen"
)

// FormData is the full set of order-form fields a customer fills in across the
// wizard. It arrives from untrusted clients and must pass through Normalize
// before being stored on a Draft.
//
// Contact, communication, package, treat-quantity, pickup, and referral fields
// map to relational columns; the design fields, terms flag, visited steps, and
// current-step pointer are persisted inside the draft's details document.
type FormData struct {
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

	SelectedAdditionalDesigns []string

	PickupDate string
	PickupTime string

	ReferralSource string
	TermsAccepted  bool

	VisitedSteps []string
	CurrentStep  int
}

// Normalize returns a sanitized copy of the form data:
//   - the email is trimmed
//   - communication method and package type outside their enumerations
//     silently collapse to the empty string
//   - treat quantities below zero reset to zero
//   - the selected-designs list loses blank entries and is never nil
//   - the visited-steps set loses blank entries and duplicates, and falls back
//     to the first step id when it would otherwise be empty
//   - the current-step pointer is clamped to the canonical step range
//
// Normalize is idempotent: normalizing twice yields the same result.
func (f FormData) Normalize() FormData {
	f.Email = strings.TrimSpace(f.Email)
	f.CommunicationMethod = normalizeEnum(f.CommunicationMethod, CommunicationEmail, CommunicationText)
	f.PackageType = normalizeEnum(f.PackageType,
		PackageSmall, PackageMedium, PackageLarge, PackageXL, PackageByDozen)

	f.RiceKrispies = nonNegative(f.RiceKrispies)
	f.Oreos = nonNegative(f.Oreos)
	f.Pretzels = nonNegative(f.Pretzels)
	f.Marshmallows = nonNegative(f.Marshmallows)

	f.SelectedAdditionalDesigns = cleanStringList(f.SelectedAdditionalDesigns)
	f.VisitedSteps = NormalizeVisitedSteps(f.VisitedSteps)
	f.CurrentStep = clampStep(f.CurrentStep)

	return f
}

// StepSnapshot projects the form onto the view the step sequencer inspects.
func (f FormData) StepSnapshot() steps.Snapshot {
	return steps.Snapshot{
		FirstName:           f.FirstName,
		LastName:            f.LastName,
		Email:               f.Email,
		Phone:               f.Phone,
		CommunicationMethod: f.CommunicationMethod,
		PackageType:         f.PackageType,
		RiceKrispies:        f.RiceKrispies,
		Oreos:               f.Oreos,
		Pretzels:            f.Pretzels,
		Marshmallows:        f.Marshmallows,
		ColorScheme:         f.ColorScheme,
		EventType:           f.EventType,
		Theme:               f.Theme,
		DesignNotes:         f.DesignNotes,
		SelectedDesigns:     f.SelectedAdditionalDesigns,
		PickupDate:          f.PickupDate,
		PickupTime:          f.PickupTime,
		VisitedSteps:        f.VisitedSteps,
	}
}

// NormalizeVisitedSteps drops blank entries and duplicates while preserving
// first-seen order. The result always contains at least the first step id;
// visited-steps must never persist as empty.
func NormalizeVisitedSteps(visited []string) []string {
	out := make([]string, 0, len(visited))
	seen := make(map[string]struct{}, len(visited))
	for _, v := range visited {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	if len(out) == 0 {
		return []string{string(steps.Lead)}
	}
	return out
}

func normalizeEnum(value string, allowed ...string) string {
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return ""
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func cleanStringList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

func clampStep(step int) int {
	maxStep := len(steps.All()) - 1
	if step < 0 {
		return 0
	}
	if step > maxStep {
		return maxStep
	}
	return step
}
