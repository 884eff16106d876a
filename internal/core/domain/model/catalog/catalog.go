// Package catalog contains the read-only reference data the ordering flow
// consumes: package options, treat options, additional-design options, pickup
// time slots, and unavailable periods. Entries are maintained outside this
// service; the core only looks them up by key, filters on the active flag, and
// orders by sort key.
package catalog

// Treat kind keys. They match the draft form's quantity field names.
const (
	TreatRiceKrispies = "riceKrispies"
	TreatOreos        = "oreos"
	TreatPretzels     = "pretzels"
	TreatMarshmallows = "marshmallows"
)

// PackageOption is a fixed-size package a customer can pick, keyed by the
// package-type enum value ("small", "medium", ...).
type PackageOption struct {
	Key       string
	Label     string
	Price     float64
	Active    bool
	SortOrder int
}

// TreatOption prices one treat kind per dozen for by-dozen orders.
type TreatOption struct {
	Key       string
	Label     string
	Price     float64
	Active    bool
	SortOrder int
}

// DesignOption is an add-on design whose price depends on the active package
// size. PerDozenPrice is nil when the option has no by-dozen price.
type DesignOption struct {
	ID                 string
	Label              string
	BasePrice          float64
	LargePriceIncrease float64
	PerDozenPrice      *float64
	Active             bool
	SortOrder          int
}

// TimeSlot is a pickup window offered on the listed weekdays.
type TimeSlot struct {
	ID        string
	Label     string
	StartTime string
	EndTime   string
	Days      []string
	Active    bool
	SortOrder int
}

// UnavailablePeriod blocks pickup scheduling between two dates, inclusive.
// Dates use the same YYYY-MM-DD wire format as the pickup-date form field.
type UnavailablePeriod struct {
	ID        string
	Reason    string
	StartDate string
	EndDate   string
	Active    bool
}
