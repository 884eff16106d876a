// Package services provides domain services that operate across multiple
// domain entities in the treats ordering system.
//
// The package includes the pricing calculator: pure functions mapping catalog
// data and a draft's selections to monetary amounts. Pricing never fails —
// missing catalog entries degrade to zero or to the historical default treat
// prices — because a price must never block rendering.
package services
