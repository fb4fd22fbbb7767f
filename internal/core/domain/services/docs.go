// Package services provides domain services that decide across several domain
// records without belonging to any single one of them.
//
// The package includes:
//   - AccessGuard: decides whether an actor may read or change an order, given
//     the order's organizational scope and the actor's capabilities and memberships
package services
