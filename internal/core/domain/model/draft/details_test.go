package draft_test

import (
	"encoding/json"
	"testing"

	"treats/internal/core/domain/model/draft"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsFromMap(t *testing.T) {
	t.Run("coerces a well formed document", func(t *testing.T) {
		details := draft.DetailsFromMap(map[string]any{
			"colorScheme":     "pastel",
			"eventType":       "birthday",
			"theme":           "space",
			"designNotes":     "extra sprinkles",
			"selectedDesigns": []any{"d1", "d2"},
			"termsAccepted":   true,
			"visitedSteps":    []any{"lead", "package"},
			"currentStep":     float64(3),
		})

		assert.Equal(t, "pastel", details.ColorScheme)
		assert.Equal(t, "birthday", details.EventType)
		assert.Equal(t, []string{"d1", "d2"}, details.SelectedDesigns)
		assert.True(t, details.TermsAccepted)
		assert.Equal(t, []string{"lead", "package"}, details.VisitedSteps)
		assert.Equal(t, 3, details.CurrentStep)
	})

	t.Run("wrong types fall back to zero values", func(t *testing.T) {
		details := draft.DetailsFromMap(map[string]any{
			"colorScheme":   float64(7),
			"termsAccepted": "yes",
			"currentStep":   "three",
		})

		assert.Empty(t, details.ColorScheme)
		assert.False(t, details.TermsAccepted)
		assert.Equal(t, 0, details.CurrentStep)
	})

	t.Run("non-string list members are dropped silently", func(t *testing.T) {
		details := draft.DetailsFromMap(map[string]any{
			"selectedDesigns": []any{"d1", float64(2), nil, "d3"},
			"visitedSteps":    []any{"lead", true, "package"},
		})

		assert.Equal(t, []string{"d1", "d3"}, details.SelectedDesigns)
		assert.Equal(t, []string{"lead", "package"}, details.VisitedSteps)
	})

	t.Run("visited steps fall back to the first step id", func(t *testing.T) {
		assert.Equal(t, []string{"lead"}, draft.DetailsFromMap(map[string]any{}).VisitedSteps)
		assert.Equal(t, []string{"lead"},
			draft.DetailsFromMap(map[string]any{"visitedSteps": "lead"}).VisitedSteps)
	})

	t.Run("current step clamps", func(t *testing.T) {
		assert.Equal(t, 7, draft.DetailsFromMap(map[string]any{"currentStep": float64(50)}).CurrentStep)
		assert.Equal(t, 0, draft.DetailsFromMap(map[string]any{"currentStep": float64(-2)}).CurrentStep)
	})
}

func TestDetails_JSONRoundTrip(t *testing.T) {
	original := draft.Details{
		ColorScheme:     "gold",
		EventType:       "wedding",
		SelectedDesigns: []string{"d9"},
		TermsAccepted:   true,
		VisitedSteps:    []string{"lead", "communication", "package"},
		CurrentStep:     2,
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored := draft.DetailsFromMap(decoded)
	assert.Equal(t, original, restored)
}
