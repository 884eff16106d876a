// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order is the one-per-draft record created at
// submission time (or attached manually); both the draft id and the order
// number carry unique indexes.
package orderrepo

import (
	"time"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DraftID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	Number      string    `gorm:"uniqueIndex"`
	SubmittedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order entity to its database representation.
func fromDomain(entity *order.Order) OrderDTO {
	return OrderDTO{
		ID:          entity.ID().Bytes(),
		DraftID:     entity.DraftID().Bytes(),
		CustomerID:  entity.CustomerID().Bytes(),
		Number:      entity.Number(),
		SubmittedAt: entity.SubmittedAt(),
	}
}

// toDomain converts a database DTO back to an order entity.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	draftID, err := kernel.UUIDFromBytes(dto.DraftID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return order.NewOrder(id, draftID, customerID, dto.Number, dto.SubmittedAt)
}
