// Package kernel provides core domain primitives for the treats ordering system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package currently provides UUID, a value object for unique identifiers
// with validation and comparison capabilities. Drafts, customers, and orders
// are all identified by kernel UUIDs. The primitives are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
