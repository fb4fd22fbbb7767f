package ordereventrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/orderevent"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderEventRepository implements ports.OrderEventRepository using GORM.
// It never updates or deletes rows.
type GormOrderEventRepository struct {
	db *gorm.DB
}

func NewGormOrderEventRepository(db *gorm.DB) *GormOrderEventRepository {
	return &GormOrderEventRepository{db: db}
}

// Append inserts the event and returns it with the identity assigned by the
// database. A missing order surfaces as errs.ObjectNotFoundError when the
// connection was opened with TranslateError.
func (r *GormOrderEventRepository) Append(
	ctx context.Context,
	event *orderevent.OrderEvent,
) (*orderevent.OrderEvent, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if event.IsAppended() {
		return nil, errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("event %d is already appended", event.ID()))
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, errs.NewObjectNotFoundErrorWithCause("order", event.OrderID().String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByOrder returns the order's events, newest first.
func (r *GormOrderEventRepository) ListByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*orderevent.OrderEvent, error) {
	var dtos []OrderEventDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("occurred_at DESC").
		Order("id DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// ListLatestBefore picks each order's latest event with DISTINCT ON and keeps
// the non-terminal ones older than cutoff, oldest first.
func (r *GormOrderEventRepository) ListLatestBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]*orderevent.OrderEvent, error) {
	var dtos []OrderEventDTO
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, order_id, status, occurred_at, remark, actor_id
		FROM (
			SELECT DISTINCT ON (order_id) id, order_id, status, occurred_at, remark, actor_id
			FROM order_events
			ORDER BY order_id, occurred_at DESC, id DESC
		) latest
		WHERE occurred_at < ? AND status NOT IN ?
		ORDER BY occurred_at, id
		LIMIT ?
	`, cutoff.UTC(), terminalStatuses(), limit).Scan(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func terminalStatuses() []string {
	names := make([]string, 0)
	for _, s := range order.Statuses() {
		if s.IsTerminal() {
			names = append(names, s.String())
		}
	}
	return names
}
