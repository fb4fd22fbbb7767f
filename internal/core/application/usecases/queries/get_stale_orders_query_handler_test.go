package queries_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStaleOrdersQueryHandler_Handle(t *testing.T) {
	w := newWorld(t)

	stuck := w.addOrder(t)
	w.appendEvent(t, stuck, order.Pending, nil, now.Add(-96*time.Hour))
	w.appendEvent(t, stuck, order.Loading, &w.driverID, now.Add(-72*time.Hour))

	olderStuck := w.addOrder(t)
	w.appendEvent(t, olderStuck, order.Assigned, nil, now.Add(-80*time.Hour))

	delivered := w.addOrder(t)
	w.appendEvent(t, delivered, order.Delivered, &w.driverID, now.Add(-72*time.Hour))

	moving := w.addOrder(t)
	w.appendEvent(t, moving, order.Loading, nil, now.Add(-72*time.Hour))
	w.appendEvent(t, moving, order.InProgress, &w.driverID, now.Add(-time.Hour))

	w.addOrder(t)

	handler := queries.NewGetStaleOrdersQueryHandler(w.factory, fixedClock{now: now})

	t.Run("oldest first", func(t *testing.T) {
		query, err := queries.NewGetStaleOrdersQuery(48*time.Hour, 10)
		require.NoError(t, err)

		stale, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, stale, 2)
		assert.Equal(t, olderStuck, stale[0].OrderID)
		assert.Equal(t, order.Assigned, stale[0].Status)
		assert.Equal(t, "3 days ago", stale[0].AgeLabel)
		assert.Equal(t, stuck, stale[1].OrderID)
		assert.Equal(t, order.Loading, stale[1].Status)
	})

	t.Run("limit", func(t *testing.T) {
		query, err := queries.NewGetStaleOrdersQuery(48*time.Hour, 1)
		require.NoError(t, err)

		stale, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, stale, 1)
		assert.Equal(t, olderStuck, stale[0].OrderID)
	})

	t.Run("nothing older than threshold", func(t *testing.T) {
		query, err := queries.NewGetStaleOrdersQuery(30*24*time.Hour, 10)
		require.NoError(t, err)

		stale, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Empty(t, stale)
	})
}
