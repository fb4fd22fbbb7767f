package ordereventrepo_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/ordereventrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/orderevent"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

var eventColumns = []string{"id", "order_id", "status", "occurred_at", "remark", "actor_id"}

func TestGormOrderEventRepository_Append_ReturnsDatabaseIdentity(t *testing.T) {
	db, mock := newMockDB(t)
	orderID := kernel.NewUUID()
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	e, err := orderevent.New(orderID, order.Loading, nil, nil, at)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "order_events" \("order_id","status","occurred_at","remark","actor_id"\)`).
		WithArgs(orderID.Bytes(), "Loading", at, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	stored, err := ordereventrepo.NewGormOrderEventRepository(db).Append(context.Background(), e)

	require.NoError(t, err)
	assert.Equal(t, orderevent.ID(42), stored.ID())
	assert.Equal(t, order.Loading, stored.Status())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderEventRepository_Append_RejectsAppendedEvent(t *testing.T) {
	db, mock := newMockDB(t)
	e, err := orderevent.Restore(5, kernel.NewUUID(), order.Loading, nil, nil, time.Now())
	require.NoError(t, err)

	_, err = ordereventrepo.NewGormOrderEventRepository(db).Append(context.Background(), e)

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderEventRepository_ListByOrder_QueryShape(t *testing.T) {
	db, mock := newMockDB(t)
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "order_events" WHERE order_id = $1 ORDER BY occurred_at DESC,id DESC`,
	)).
		WithArgs(orderID.Bytes()).
		WillReturnRows(sqlmock.NewRows(eventColumns).
			AddRow(2, orderID.String(), "InProgress", at, "at gate", actorID.String()).
			AddRow(1, orderID.String(), "Pending", at.Add(-time.Hour), nil, nil))

	events, err := ordereventrepo.NewGormOrderEventRepository(db).ListByOrder(context.Background(), orderID)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, orderevent.ID(2), events[0].ID())
	assert.Equal(t, order.InProgress, events[0].Status())
	require.NotNil(t, events[0].ActorID())
	assert.Equal(t, actorID, *events[0].ActorID())
	assert.True(t, events[1].IsSystemGenerated())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderEventRepository_ListByOrder_UnknownStoredStatus(t *testing.T) {
	db, mock := newMockDB(t)
	orderID := kernel.NewUUID()

	mock.ExpectQuery(`SELECT \* FROM "order_events"`).
		WillReturnRows(sqlmock.NewRows(eventColumns).
			AddRow(1, orderID.String(), "Shipped", time.Now(), nil, nil))

	_, err := ordereventrepo.NewGormOrderEventRepository(db).ListByOrder(context.Background(), orderID)

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderEventRepository_ListLatestBefore_ExcludesTerminalStatuses(t *testing.T) {
	db, mock := newMockDB(t)
	cutoff := time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT DISTINCT ON \(order_id\)`).
		WithArgs(cutoff, "Delivered", "Cancelled", "Returned", 5).
		WillReturnRows(sqlmock.NewRows(eventColumns))

	latest, err := ordereventrepo.NewGormOrderEventRepository(db).ListLatestBefore(context.Background(), cutoff, 5)

	require.NoError(t, err)
	assert.Empty(t, latest)
	require.NoError(t, mock.ExpectationsWereMet())
}
