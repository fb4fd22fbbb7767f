// Package kernel provides shared domain primitives for the logistics core.
//
// The package includes:
//   - UUID: A value object for identifiers of orders, organizations, branches,
//     memberships and persons, with validation and comparison capabilities
//
// UUID is immutable and safe for concurrent use. Its zero value is invalid and
// is rejected by Validate, so a forgotten identifier never reaches persistence.
package kernel
