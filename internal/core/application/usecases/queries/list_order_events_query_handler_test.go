package queries_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/application/usecases/shared"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListHandler(w *world) queries.ListOrderEventsQueryHandler {
	return queries.NewListOrderEventsQueryHandler(
		w.factory, services.NewAccessGuard(), fixedClock{now: now}, slog.New(slog.DiscardHandler),
	)
}

func TestListOrderEventsQueryHandler_Handle(t *testing.T) {
	w := newWorld(t)
	orderID := w.addOrder(t)
	departed := kernel.NewUUID()

	w.appendEvent(t, orderID, order.Pending, nil, now.Add(-45*24*time.Hour))
	w.appendEvent(t, orderID, order.Assigned, &w.driverID, now.Add(-3*time.Hour))
	w.appendEvent(t, orderID, order.Loading, &departed, now.Add(-10*time.Minute))
	w.appendEvent(t, orderID, order.InProgress, &w.driverID, now.Add(-20*time.Second))

	query, err := queries.NewListOrderEventsQuery(orderID, w.driverID)
	require.NoError(t, err)

	history, err := newListHandler(w).Handle(t.Context(), query)

	require.NoError(t, err)
	require.Len(t, history, 4)

	assert.Equal(t, order.InProgress, history[0].Status)
	assert.Equal(t, "Dana Driver", history[0].ActorDisplayName)
	assert.Equal(t, "moments ago", history[0].AgeLabel)

	assert.Equal(t, order.Loading, history[1].Status)
	assert.Equal(t, shared.UnknownActorName, history[1].ActorDisplayName)
	assert.Equal(t, "10 minutes ago", history[1].AgeLabel)

	assert.Equal(t, order.Assigned, history[2].Status)
	assert.Equal(t, "3 hours ago", history[2].AgeLabel)

	assert.Equal(t, order.Pending, history[3].Status)
	assert.Equal(t, shared.SystemActorName, history[3].ActorDisplayName)
	assert.Nil(t, history[3].ActorID)
	assert.Equal(t, "2025/01/28 09:30", history[3].AgeLabel)
}

func TestListOrderEventsQueryHandler_Handle_IsRepeatable(t *testing.T) {
	w := newWorld(t)
	orderID := w.addOrder(t)
	w.appendEvent(t, orderID, order.Pending, nil, now.Add(-time.Hour))
	handler := newListHandler(w)
	query, err := queries.NewListOrderEventsQuery(orderID, w.driverID)
	require.NoError(t, err)

	first, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	second, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	w.appendEvent(t, orderID, order.Assigned, &w.driverID, now)
	third, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

func TestListOrderEventsQueryHandler_Handle_EmptyHistory(t *testing.T) {
	w := newWorld(t)
	orderID := w.addOrder(t)
	query, err := queries.NewListOrderEventsQuery(orderID, w.driverID)
	require.NoError(t, err)

	history, err := newListHandler(w).Handle(t.Context(), query)

	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestListOrderEventsQueryHandler_Handle_Failures(t *testing.T) {
	w := newWorld(t)
	orderID := w.addOrder(t)
	w.appendEvent(t, orderID, order.Pending, nil, now)

	testCases := []struct {
		name    string
		orderID kernel.UUID
		actorID kernel.UUID
		want    errs.Kind
	}{
		{"unknown order", kernel.NewUUID(), w.driverID, errs.KindNotFound},
		{"unknown actor", orderID, kernel.NewUUID(), errs.KindNotFound},
		{"actor from another organization", orderID, w.outsiderID, errs.KindForbiddenAccess},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := queries.NewListOrderEventsQuery(tc.orderID, tc.actorID)
			require.NoError(t, err)

			history, err := newListHandler(w).Handle(t.Context(), query)

			require.Error(t, err)
			assert.Nil(t, history)
			assert.Equal(t, tc.want, errs.KindOf(err))
		})
	}
}

func TestListOrderEventsQueryHandler_Handle_NotConstructed(t *testing.T) {
	w := newWorld(t)
	var logs bytes.Buffer
	handler := queries.NewListOrderEventsQueryHandler(
		w.factory, services.NewAccessGuard(), fixedClock{now: now}, slog.New(slog.NewJSONHandler(&logs, nil)),
	)

	_, err := handler.Handle(t.Context(), queries.ListOrderEventsQuery{})

	require.ErrorIs(t, err, queries.ErrListOrderEventsQueryIsNotConstructed)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "list_order_events failed", entry["msg"])
	assert.Equal(t, "Unexpected", entry["kind"])
}
