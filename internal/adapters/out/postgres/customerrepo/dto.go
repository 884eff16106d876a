// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. Customers are keyed by a unique email; writes go
// through an insert-or-update on that key so a returning visitor never gets a
// second record.
package customerrepo

import (
	"treats/internal/core/domain/model/customer"
	"treats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
// The unique index on email backs the one-record-per-email invariant.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex"`
	FirstName string
	LastName  string
	Phone     string
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer entity to its database representation.
func fromDomain(entity *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        entity.ID().Bytes(),
		Email:     entity.Email(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
		Phone:     entity.Phone(),
	}
}

// toDomain converts a database DTO back to a customer entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Email, dto.FirstName, dto.LastName, dto.Phone)
}
