// Package orderevent provides the append-only record of an order's status
// history.
//
// The package includes:
//   - OrderEvent: one immutable, timestamped status record with optional remark
//     and acting person
//   - AgeLabel: the human-readable age of an event, derived at read time
//
// Key business rules:
//   - An event names an existing order and a vocabulary status
//   - Timestamps are UTC; remarks are trimmed and an empty remark is absent
//   - An event without an acting person is system-generated
//   - Events expose no mutators; the store assigns the identity on append
package orderevent
