// Package commands contains the operations that change order history.
//
// Handlers open a unit of work, load and authorize everything they need,
// append, and commit. Any failure before the commit rolls back, so a refused
// or failed command leaves no trace in storage.
package commands
