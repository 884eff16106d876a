// Package order provides the submitted-order entity for the treats ordering
// system. An Order is created exactly once per draft, at submission time, and
// is immutable afterwards except for the administrative override path that may
// replace its order number or linkage.
//
// The package includes:
//   - Order: the entity carrying the generated order number, submission time,
//     and back-references to the originating draft and its customer
//   - GenerateNumber: the order-number scheme, a UTC date segment followed by
//     twelve characters drawn from a uniform 36-symbol alphabet
//
// Uniqueness of generated numbers is probabilistic; the persistence layer
// carries a unique index as the backstop.
package order
