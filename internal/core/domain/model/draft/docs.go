// Package draft contains the order-in-progress aggregate and its supporting
// value types for the treats ordering system.
//
// The aggregate owns three responsibilities:
//   - merging and sanitizing untrusted client form data into canonical state
//     (FormData.Normalize)
//   - the typed secondary-fields document persisted as JSON alongside the
//     relational columns, defensively re-validated on every read (Details,
//     DetailsFromMap)
//   - the one-way draft -> submitted lifecycle transition (Status, Submit)
//
// The package enforces that visited steps never persist as empty, that
// enum-like fields stay within their enumerations, and that treat quantities
// stay non-negative.
package draft
