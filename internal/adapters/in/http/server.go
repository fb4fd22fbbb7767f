package http

import (
	"context"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/application/usecases/shared"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateOrderEventHandler records one order event.
type CreateOrderEventHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderEventCommand) (shared.OrderEventView, error)
}

// ListOrderEventsHandler reads an order's history.
type ListOrderEventsHandler interface {
	Handle(ctx context.Context, query queries.ListOrderEventsQuery) ([]shared.OrderEventView, error)
}

// Server implements ServerInterface on top of the order event use cases.
type Server struct {
	createOrderEventHandler CreateOrderEventHandler
	listOrderEventsHandler  ListOrderEventsHandler
}

func NewServer(
	createOrderEventHandler CreateOrderEventHandler,
	listOrderEventsHandler ListOrderEventsHandler,
) *Server {
	return &Server{
		createOrderEventHandler: createOrderEventHandler,
		listOrderEventsHandler:  listOrderEventsHandler,
	}
}

// CreateOrderEvent handles POST /api/v1/orders/{orderId}/events.
func (s *Server) CreateOrderEvent(ctx echo.Context, orderID openapi_types.UUID, params OrderEventParams) error {
	var body NewOrderEvent
	if err := ctx.Bind(&body); err != nil {
		return malformedRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return malformedRequest(ctx, "Invalid request body: "+err.Error())
	}

	orderKey, actorKey, err := toKernelIDs(orderID, params.XActorID)
	if err != nil {
		return malformedRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateOrderEventCommand(orderKey, actorKey, body.Status, body.Remark)
	if err != nil {
		return malformedRequest(ctx, err.Error())
	}

	view, err := s.createOrderEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return failure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderEvent(view))
}

// ListOrderEvents handles GET /api/v1/orders/{orderId}/events.
func (s *Server) ListOrderEvents(ctx echo.Context, orderID openapi_types.UUID, params OrderEventParams) error {
	orderKey, actorKey, err := toKernelIDs(orderID, params.XActorID)
	if err != nil {
		return malformedRequest(ctx, err.Error())
	}

	query, err := queries.NewListOrderEventsQuery(orderKey, actorKey)
	if err != nil {
		return malformedRequest(ctx, err.Error())
	}

	views, err := s.listOrderEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	response := make([]OrderEvent, len(views))
	for i, view := range views {
		response[i] = toOrderEvent(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

func toKernelIDs(orderID, actorID openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	orderKey, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	actorKey, err := kernel.UUIDFromBytes(actorID[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return orderKey, actorKey, nil
}

func toOrderEvent(view shared.OrderEventView) OrderEvent {
	event := OrderEvent{
		ID:               int64(view.ID),
		OrderID:          view.OrderID.Bytes(),
		Status:           view.Status.String(),
		EventTimestamp:   view.OccurredAt.UTC(),
		Remark:           view.Remark,
		ActorDisplayName: view.ActorDisplayName,
		AgeLabel:         view.AgeLabel,
	}
	if view.ActorID != nil {
		actorID := view.ActorID.Bytes()
		event.ActorID = &actorID
	}
	return event
}
