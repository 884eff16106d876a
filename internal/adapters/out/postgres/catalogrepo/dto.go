// Package catalogrepo provides read-only access to the reference catalog:
// package options, treat options, design options, pickup time slots, and
// unavailable periods. The tables are maintained by back-office tooling; this
// service only reads them.
package catalogrepo

import (
	"treats/internal/core/domain/model/catalog"

	"github.com/lib/pq"
)

// PackageOptionDTO maps the package_options table.
type PackageOptionDTO struct {
	Key       string `gorm:"primaryKey"`
	Label     string
	Price     float64
	Active    bool
	SortOrder int
}

func (PackageOptionDTO) TableName() string {
	return "package_options"
}

// TreatOptionDTO maps the treat_options table.
type TreatOptionDTO struct {
	Key       string `gorm:"primaryKey"`
	Label     string
	Price     float64
	Active    bool
	SortOrder int
}

func (TreatOptionDTO) TableName() string {
	return "treat_options"
}

// DesignOptionDTO maps the design_options table. PerDozenPrice is NULL for
// options without a by-dozen price.
type DesignOptionDTO struct {
	ID                 string `gorm:"primaryKey"`
	Label              string
	BasePrice          float64
	LargePriceIncrease float64
	PerDozenPrice      *float64
	Active             bool
	SortOrder          int
}

func (DesignOptionDTO) TableName() string {
	return "design_options"
}

// TimeSlotDTO maps the time_slots table. Days is a text[] column holding the
// weekdays the slot is offered on.
type TimeSlotDTO struct {
	ID        string `gorm:"primaryKey"`
	Label     string
	StartTime string
	EndTime   string
	Days      pq.StringArray `gorm:"type:text[]"`
	Active    bool
	SortOrder int
}

func (TimeSlotDTO) TableName() string {
	return "time_slots"
}

// UnavailablePeriodDTO maps the unavailable_periods table. Dates use the same
// YYYY-MM-DD wire format as the pickup-date form field.
type UnavailablePeriodDTO struct {
	ID        string `gorm:"primaryKey"`
	Reason    string
	StartDate string `gorm:"type:varchar(10)"`
	EndDate   string `gorm:"type:varchar(10)"`
	Active    bool
}

func (UnavailablePeriodDTO) TableName() string {
	return "unavailable_periods"
}

func packageToDomain(dto PackageOptionDTO) catalog.PackageOption {
	return catalog.PackageOption{
		Key:       dto.Key,
		Label:     dto.Label,
		Price:     dto.Price,
		Active:    dto.Active,
		SortOrder: dto.SortOrder,
	}
}

func treatToDomain(dto TreatOptionDTO) catalog.TreatOption {
	return catalog.TreatOption{
		Key:       dto.Key,
		Label:     dto.Label,
		Price:     dto.Price,
		Active:    dto.Active,
		SortOrder: dto.SortOrder,
	}
}

func designToDomain(dto DesignOptionDTO) catalog.DesignOption {
	return catalog.DesignOption{
		ID:                 dto.ID,
		Label:              dto.Label,
		BasePrice:          dto.BasePrice,
		LargePriceIncrease: dto.LargePriceIncrease,
		PerDozenPrice:      dto.PerDozenPrice,
		Active:             dto.Active,
		SortOrder:          dto.SortOrder,
	}
}

func timeSlotToDomain(dto TimeSlotDTO) catalog.TimeSlot {
	return catalog.TimeSlot{
		ID:        dto.ID,
		Label:     dto.Label,
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		Days:      dto.Days,
		Active:    dto.Active,
		SortOrder: dto.SortOrder,
	}
}

func periodToDomain(dto UnavailablePeriodDTO) catalog.UnavailablePeriod {
	return catalog.UnavailablePeriod{
		ID:        dto.ID,
		Reason:    dto.Reason,
		StartDate: dto.StartDate,
		EndDate:   dto.EndDate,
		Active:    dto.Active,
	}
}
