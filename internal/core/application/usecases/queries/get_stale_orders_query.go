package queries

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	MinStaleOrdersLimit = 1
	MaxStaleOrdersLimit = 1000
)

var ErrGetStaleOrdersQueryIsNotConstructed = errors.New(
	"GetStaleOrdersQuery must be created via NewGetStaleOrdersQuery constructor",
)

// GetStaleOrdersQuery finds orders whose latest event is non-terminal and
// older than a threshold. It reads events only and never writes.
//
// Example:
//
//	query, _ := NewGetStaleOrdersQuery(48*time.Hour, 100)
//	stale, err := handler.Handle(ctx, query)
//	for _, o := range stale {
//	    fmt.Printf("order %s stuck in %s since %s\n", o.OrderID, o.Status, o.AgeLabel)
//	}
type GetStaleOrdersQuery struct { //nolint:recvcheck //using for validation
	olderThan time.Duration
	limit     int

	guard guard.ConstructorGuard
}

// NewGetStaleOrdersQuery requires a positive threshold and a limit between
// MinStaleOrdersLimit and MaxStaleOrdersLimit.
func NewGetStaleOrdersQuery(olderThan time.Duration, limit int) (GetStaleOrdersQuery, error) {
	query := GetStaleOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOlderThan(olderThan),
		query.setLimit(limit),
	); err != nil {
		return GetStaleOrdersQuery{}, err
	}

	return query, nil
}

func (q GetStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleOrdersQueryIsNotConstructed)
}

func (q GetStaleOrdersQuery) OlderThan() time.Duration { return q.olderThan }

func (q GetStaleOrdersQuery) Limit() int { return q.limit }

func (q *GetStaleOrdersQuery) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("olderThan", fmt.Errorf("%s is not positive", olderThan))
	}

	q.olderThan = olderThan
	return nil
}

func (q *GetStaleOrdersQuery) setLimit(limit int) error {
	if limit < MinStaleOrdersLimit || limit > MaxStaleOrdersLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, MinStaleOrdersLimit, MaxStaleOrdersLimit)
	}

	q.limit = limit
	return nil
}

// GetStaleOrdersQueryResponse describes one stale order by its latest event.
type GetStaleOrdersQueryResponse struct {
	OrderID    kernel.UUID
	Status     order.Status
	OccurredAt time.Time
	AgeLabel   string
}
