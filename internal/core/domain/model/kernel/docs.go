// Package kernel provides core domain primitives shared by the back-office
// domain model.
//
// The package currently contains a single building block:
//   - UUID: a value object for entity identifiers with validation and
//     comparison capabilities
//
// Primitives in this package are immutable and safe for concurrent use.
package kernel
