// Package draftrepo provides data transfer objects and mapping functions for
// draft persistence. The primary form fields map to relational columns; the
// secondary fields travel in a jsonb details document, mirroring the split the
// domain model makes.
package draftrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DraftDTO represents the database structure for persisting draft aggregates.
// Timestamps are owned by the domain, so GORM's automatic stamping is off.
type DraftDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status string    `gorm:"type:varchar(16);index"`

	FirstName string
	LastName  string
	Email     string `gorm:"index"`
	Phone     string

	CommunicationMethod string `gorm:"type:varchar(16)"`
	PackageType         string `gorm:"type:varchar(16)"`

	RiceKrispies int
	Oreos        int
	Pretzels     int
	Marshmallows int

	PickupDate     string `gorm:"type:varchar(10)"`
	PickupTime     string
	ReferralSource string

	Details DetailsDTO `gorm:"type:jsonb"`

	Rush       bool
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt   time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false;index"`
	SubmittedAt *time.Time
}

// TableName specifies the database table name for draft entities.
// Overrides GORM's default naming convention to use "drafts".
func (DraftDTO) TableName() string {
	return "drafts"
}

// DetailsDTO carries the draft's secondary-fields document in and out of the
// jsonb column. Reads go through DetailsFromMap so documents written by older
// schema versions coerce to the current shape instead of failing.
type DetailsDTO draft.Details

// Value implements driver.Valuer by marshaling the document to JSON.
func (d DetailsDTO) Value() (driver.Value, error) {
	return json.Marshal(draft.Details(d))
}

// Scan implements sql.Scanner for jsonb column reads.
func (d *DetailsDTO) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		raw = nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported details column type %T", value)
	}

	doc := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
	}

	*d = DetailsDTO(draft.DetailsFromMap(doc))
	return nil
}

// fromDomain converts a draft aggregate to its database representation.
func fromDomain(aggregate *draft.Draft) DraftDTO {
	form := aggregate.Form()

	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	return DraftDTO{
		ID:     aggregate.ID().Bytes(),
		Status: aggregate.Status().String(),

		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,

		CommunicationMethod: form.CommunicationMethod,
		PackageType:         form.PackageType,

		RiceKrispies: form.RiceKrispies,
		Oreos:        form.Oreos,
		Pretzels:     form.Pretzels,
		Marshmallows: form.Marshmallows,

		PickupDate:     form.PickupDate,
		PickupTime:     form.PickupTime,
		ReferralSource: form.ReferralSource,

		Details: DetailsDTO(aggregate.Details()),

		Rush:       aggregate.Rush(),
		CustomerID: customerID,

		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		SubmittedAt: aggregate.SubmittedAt(),
	}
}

// toDomain converts a database DTO back to a draft aggregate via RestoreDraft,
// which re-normalizes the form on the way in.
func toDomain(dto DraftDTO) (*draft.Draft, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	form := draft.FormData{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Phone:     dto.Phone,

		CommunicationMethod: dto.CommunicationMethod,
		PackageType:         dto.PackageType,

		RiceKrispies: dto.RiceKrispies,
		Oreos:        dto.Oreos,
		Pretzels:     dto.Pretzels,
		Marshmallows: dto.Marshmallows,

		ColorScheme: dto.Details.ColorScheme,
		EventType:   dto.Details.EventType,
		Theme:       dto.Details.Theme,
		DesignNotes: dto.Details.DesignNotes,

		SelectedAdditionalDesigns: dto.Details.SelectedDesigns,

		PickupDate: dto.PickupDate,
		PickupTime: dto.PickupTime,

		ReferralSource: dto.ReferralSource,
		TermsAccepted:  dto.Details.TermsAccepted,

		VisitedSteps: dto.Details.VisitedSteps,
		CurrentStep:  dto.Details.CurrentStep,
	}

	return draft.RestoreDraft(
		id,
		draft.StatusFromString(dto.Status),
		form,
		customerID,
		dto.Rush,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.SubmittedAt,
	)
}
