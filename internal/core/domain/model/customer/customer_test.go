package customer_test

import (
	"testing"

	"treats/internal/core/domain/model/customer"
	"treats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates a customer with a trimmed email", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "  dana@example.com ", "Dana", "Reyes", "555-0100")

		require.NoError(t, err)
		assert.Equal(t, "dana@example.com", c.Email())
		assert.Equal(t, "Dana", c.FirstName())
		assert.Equal(t, "Reyes", c.LastName())
		assert.Equal(t, "555-0100", c.Phone())
		require.NoError(t, c.Validate())
	})

	t.Run("rejects a blank email", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "   ", "Dana", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("rejects an invalid id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := customer.NewCustomer(zero, "a@b.com", "", "", "")

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c customer.Customer
		require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})
}

func TestCustomer_Refresh(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "a@b.com", "Old", "Name", "000")
	require.NoError(t, err)

	c.Refresh("New", "Name", "555-0199")

	assert.Equal(t, "New", c.FirstName())
	assert.Equal(t, "555-0199", c.Phone())
	assert.Equal(t, "a@b.com", c.Email(), "refresh never touches the email key")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", customer.NormalizeEmail(" a@b.com  "))
	assert.Empty(t, customer.NormalizeEmail("   "))
}
