// Package kernel provides the value objects shared across the ordering
// domain model. It implements the fundamental building blocks used by the
// Order and Customer aggregates.
//
// The package includes:
//   - Email: a normalized, validated email address
//   - Price and Currency: a fixed-point monetary amount in one of the
//     supported currencies
//   - OrderID: a UUID v4 identifier for orders
//   - CustomerID: a non-empty string identifier for customers
//
// All types are immutable value objects with structural equality: two
// values are equal when their attributes are equal. Every type is created
// through a validated constructor and is guaranteed valid afterwards; the
// zero value of each type is invalid and fails Validate. They are safe
// for concurrent reads since nothing mutates them after construction.
//
// Validation failures are reported through the error taxonomy in
// internal/pkg/errs, never as untyped errors.
package kernel
