package draft

// Details is the typed secondary-fields document persisted alongside the
// draft's relational columns. It carries the design selections, the terms
// flag, the visited-steps set (serialized as an ordered list), and the
// current-step pointer.
//
// The stored value may have been written by an older schema version, so a
// document read back from persistence must go through DetailsFromMap, which
// re-validates every field's type and applies the same fallback rules as form
// normalization.
type Details struct {
	ColorScheme     string   `json:"colorScheme"`
	EventType       string   `json:"eventType"`
	Theme           string   `json:"theme"`
	DesignNotes     string   `json:"designNotes"`
	SelectedDesigns []string `json:"selectedDesigns"`
	TermsAccepted   bool     `json:"termsAccepted"`
	VisitedSteps    []string `json:"visitedSteps"`
	CurrentStep     int      `json:"currentStep"`
}

// DetailsFromMap rebuilds a Details document from a loosely typed JSON object.
// Every field is coerced defensively: strings default to empty, booleans to
// false, the step pointer to zero, lists drop non-string members, and the
// visited-steps set falls back to the first step id when empty.
func DetailsFromMap(raw map[string]any) Details {
	d := Details{
		ColorScheme:     stringField(raw, "colorScheme"),
		EventType:       stringField(raw, "eventType"),
		Theme:           stringField(raw, "theme"),
		DesignNotes:     stringField(raw, "designNotes"),
		SelectedDesigns: stringListField(raw, "selectedDesigns"),
		TermsAccepted:   boolField(raw, "termsAccepted"),
		VisitedSteps:    stringListField(raw, "visitedSteps"),
		CurrentStep:     intField(raw, "currentStep"),
	}

	d.SelectedDesigns = cleanStringList(d.SelectedDesigns)
	d.VisitedSteps = NormalizeVisitedSteps(d.VisitedSteps)
	d.CurrentStep = clampStep(d.CurrentStep)
	return d
}

func stringField(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

func boolField(raw map[string]any, key string) bool {
	if b, ok := raw[key].(bool); ok {
		return b
	}
	return false
}

// intField accepts float64 because encoding/json decodes all numbers into it.
func intField(raw map[string]any, key string) int {
	switch n := raw[key].(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func stringListField(raw map[string]any, key string) []string {
	list, ok := raw[key].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
