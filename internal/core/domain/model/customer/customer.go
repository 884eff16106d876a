// Package customer contains the customer entity correlated to drafts by
// normalized email. At most one customer exists per email; upserts overwrite
// the name and phone fields rather than appending history.
package customer

import (
	"errors"
	"strings"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/errs"
	"treats/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrEmailIsRequired is returned when attempting to create a customer without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")
)

// Customer is the identity record a draft correlates to when it carries a
// non-empty email. The email is the unique key; it is stored trimmed.
type Customer struct {
	id        kernel.UUID
	email     string
	firstName string
	lastName  string
	phone     string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer keyed by the trimmed email.
// The email must be non-empty after trimming; name and phone may be blank.
func NewCustomer(id kernel.UUID, email, firstName, lastName, phone string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	c.firstName = firstName
	c.lastName = lastName
	c.phone = phone
	return c, nil
}

// RestoreCustomer reconstructs a customer from persistent storage.
func RestoreCustomer(id kernel.UUID, email, firstName, lastName, phone string) (*Customer, error) {
	return NewCustomer(id, email, firstName, lastName, phone)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Email returns the normalized (trimmed) email the customer is keyed by.
func (c *Customer) Email() string {
	return c.email
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Refresh overwrites the contact fields with the latest form values.
// Upserts always replace; nothing is appended.
func (c *Customer) Refresh(firstName, lastName, phone string) {
	c.firstName = firstName
	c.lastName = lastName
	c.phone = phone
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

// NormalizeEmail trims the email the way the unique key expects it.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
