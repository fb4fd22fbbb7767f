package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/shared"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/orderevent"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// CreateOrderEventCommandHandler records order status events.
//
// All checks run inside one unit of work before the append, so a refused or
// invalid request leaves no event behind. Failures are checked in this order:
// missing order, missing actor, denied access, unknown status.
//
// Example:
//
//	handler := NewCreateOrderEventCommandHandler(uowFactory, services.NewAccessGuard(), ports.SystemClock{}, logger)
//	view, err := handler.Handle(ctx, cmd)
//	if errs.KindOf(err) == errs.KindForbiddenAccess {
//	    // actor may not touch this order
//	}
type CreateOrderEventCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	guard      services.AccessGuard
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCreateOrderEventCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	guard services.AccessGuard,
	clock ports.Clock,
	logger *slog.Logger,
) CreateOrderEventCommandHandler {
	return CreateOrderEventCommandHandler{
		uowFactory: uowFactory,
		guard:      guard,
		clock:      clock,
		logger:     logger.With("component", "CreateOrderEventCommandHandler"),
	}
}

// Handle authorizes the actor, parses the status and appends the event.
// It returns the stored event enriched with the actor's display name.
func (h *CreateOrderEventCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderEventCommand,
) (shared.OrderEventView, error) {
	var view shared.OrderEventView
	err := cmd.Validate()
	if err == nil {
		view, err = h.handle(ctx, cmd)
	}

	attrs := []any{"order_id", cmd.OrderID().String(), "actor_id", cmd.ActorID().String()}
	if err == nil {
		attrs = append(attrs, "event_id", int64(view.ID), "status", view.Status.String())
	}
	shared.LogOutcome(ctx, h.logger, shared.OperationCreateOrderEvent, err, attrs...)

	return view, err
}

func (h *CreateOrderEventCommandHandler) handle(
	ctx context.Context,
	cmd CreateOrderEventCommand,
) (shared.OrderEventView, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shared.OrderEventView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	authorized, err := shared.AuthorizeOrderAccess(
		ctx, uow, h.guard, shared.OperationCreateOrderEvent, cmd.OrderID(), cmd.ActorID(),
	)
	if err != nil {
		return shared.OrderEventView{}, err
	}

	status, err := order.ParseStatus(cmd.RawStatus())
	if err != nil {
		return shared.OrderEventView{}, err
	}

	if err = ctx.Err(); err != nil {
		return shared.OrderEventView{}, err
	}

	actorID := cmd.ActorID()
	event, err := orderevent.New(cmd.OrderID(), status, cmd.Remark(), &actorID, h.clock.Now())
	if err != nil {
		return shared.OrderEventView{}, err
	}

	stored, err := uow.OrderEventRepository().Append(ctx, event)
	if err != nil {
		return shared.OrderEventView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shared.OrderEventView{}, err
	}

	return shared.NewOrderEventView(stored, authorized.Actor.DisplayName(), h.clock.Now()), nil
}
