// Package order provides the order record as seen by the order event core:
// its identity, the organizational scope it belongs to, and its status.
//
// The package includes:
//   - Order: identity, Scope and current status of a shipment
//   - Scope: the owning organization and optional branch used for authorization
//   - Status: the fixed status vocabulary with case-insensitive parsing
//
// Key business rules:
//   - Every order belongs to exactly one organization, and optionally one branch of it
//   - The status vocabulary is Pending, Assigned, Loading, InProgress, Unloading,
//     Delivered, Cancelled, Returned; the last three are terminal markers
//   - No transition graph is enforced: any status may follow any other
package order
