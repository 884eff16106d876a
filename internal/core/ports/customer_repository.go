package ports

import (
	"context"

	"treats/internal/core/domain/model/customer"
	"treats/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer entities.
// Customers are keyed by their normalized email address; there is never more
// than one record per email.
type CustomerRepository interface {
	// Upsert stores the customer, inserting a new record or overwriting the
	// profile fields of the record that already holds the same email.
	// Returns the stored entity, which keeps the original identifier when
	// the email was already known.
	Upsert(ctx context.Context, entity *customer.Customer) (*customer.Customer, error)

	// Get retrieves a customer by its unique identifier.
	// Returns ErrObjectNotFound when no customer with the id exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by its normalized email address.
	// Returns ErrObjectNotFound when the email is unknown.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
}
