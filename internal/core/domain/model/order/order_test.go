package order_test

import (
	"testing"
	"time"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	submittedAt := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	t.Run("creates a valid order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "20260828-ABCDEF123456", submittedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "20260828-ABCDEF123456", o.Number())
		assert.Equal(t, submittedAt, o.SubmittedAt())
	})

	t.Run("rejects a blank order number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", submittedAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderNumber")
	})

	t.Run("rejects a missing customer id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), zero, "20260828-ABCDEF123456", submittedAt)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Renumber(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "20260828-AAAAAAAAAAAA",
		time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, o.Renumber("CUSTOM-42"))
	assert.Equal(t, "CUSTOM-42", o.Number())

	require.Error(t, o.Renumber(""))
	assert.Equal(t, "CUSTOM-42", o.Number(), "failed renumber leaves the number unchanged")
}

func TestGenerateNumber(t *testing.T) {
	t.Run("uses the UTC date segment and a 12 character suffix", func(t *testing.T) {
		// 23:30 in UTC-5 is already the next day in UTC.
		loc := time.FixedZone("UTC-5", -5*60*60)
		submittedAt := time.Date(2026, 8, 28, 23, 30, 0, 0, loc)

		number := order.GenerateNumber(submittedAt)

		assert.Regexp(t, `^20260829-[A-Z0-9]{12}$`, number)
	})

	t.Run("suffixes vary between calls", func(t *testing.T) {
		now := time.Now()
		seen := map[string]struct{}{}
		for range 50 {
			seen[order.GenerateNumber(now)] = struct{}{}
		}

		assert.Greater(t, len(seen), 1)
	})
}
