// Package queries contains read-only operations over order history.
//
// ListOrderEventsQuery returns an order's events newest first, each with the
// acting person's display name and an age label computed at read time.
// GetStaleOrdersQuery reports orders whose latest event is non-terminal and
// older than a threshold.
package queries
