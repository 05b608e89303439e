// Package order provides the domain entity and business rules for order
// management in the back-office system. It implements the Order aggregate
// root with lifecycle management and the cancellation rule.
//
// The package includes:
//   - Order: the aggregate root owning identity, owning user reference,
//     generated order number, nullable total value, notes, and lifecycle state
//   - Status: the enumerated lifecycle state of an order
//
// Key business rules:
//   - Orders start in Pending status with a generated order number and a
//     creation timestamp, both immutable afterwards
//   - A full update overwrites only total value, status, and notes
//   - A direct status update is unguarded; Cancel is the guarded path and
//     rejects cancelling a Delivered order
package order
