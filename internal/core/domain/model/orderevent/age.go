package orderevent

import (
	"fmt"
	"time"
)

// AbsoluteLayout is the layout used for events older than a month.
const AbsoluteLayout = "2006/01/02 15:04"

const day = 24 * time.Hour

// AgeLabel renders how long ago occurredAt was, relative to now:
//
//	< 1 minute   "moments ago"
//	< 1 hour     "N minutes ago"
//	< 1 day      "N hours ago"
//	< 30 days    "N days ago"
//	otherwise    occurredAt in UTC as YYYY/MM/DD HH:MM
//
// N is truncated. The label is never stored; the same event reads differently
// as time passes. Events stamped after now render as "moments ago".
func AgeLabel(occurredAt, now time.Time) string {
	elapsed := now.Sub(occurredAt)

	switch {
	case elapsed < time.Minute:
		return "moments ago"
	case elapsed < time.Hour:
		return fmt.Sprintf("%d minutes ago", int64(elapsed/time.Minute))
	case elapsed < day:
		return fmt.Sprintf("%d hours ago", int64(elapsed/time.Hour))
	case elapsed < 30*day:
		return fmt.Sprintf("%d days ago", int64(elapsed/day))
	default:
		return occurredAt.UTC().Format(AbsoluteLayout)
	}
}
