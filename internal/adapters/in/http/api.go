package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// NewOrderEvent is the request body of createOrderEvent.
type NewOrderEvent struct {
	Status string  `json:"status" validate:"required"`
	Remark *string `json:"remark,omitempty" validate:"omitempty,max=1000"`
}

// OrderEvent is one entry of an order's history.
type OrderEvent struct {
	ID               int64               `json:"id"`
	OrderID          openapi_types.UUID  `json:"orderId"`
	Status           string              `json:"status"`
	EventTimestamp   time.Time           `json:"eventTimestamp"`
	Remark           *string             `json:"remark,omitempty"`
	ActorID          *openapi_types.UUID `json:"actorId,omitempty"`
	ActorDisplayName string              `json:"actorDisplayName"`
	AgeLabel         string              `json:"ageLabel"`
}

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// OrderEventParams are the header parameters shared by both operations.
type OrderEventParams struct {
	XActorID openapi_types.UUID
}

// ServerInterface is implemented by Server.
type ServerInterface interface {
	// CreateOrderEvent handles POST /api/v1/orders/{orderId}/events.
	CreateOrderEvent(ctx echo.Context, orderID openapi_types.UUID, params OrderEventParams) error
	// ListOrderEvents handles GET /api/v1/orders/{orderId}/events.
	ListOrderEvents(ctx echo.Context, orderID openapi_types.UUID, params OrderEventParams) error
}

// ServerInterfaceWrapper binds path and header parameters before calling
// the ServerInterface.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateOrderEvent(ctx echo.Context) error {
	orderID, params, err := bindOrderEventParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CreateOrderEvent(ctx, orderID, params)
}

func (w *ServerInterfaceWrapper) ListOrderEvents(ctx echo.Context) error {
	orderID, params, err := bindOrderEventParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListOrderEvents(ctx, orderID, params)
}

func bindOrderEventParams(ctx echo.Context) (openapi_types.UUID, OrderEventParams, error) {
	var orderID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderID, OrderEventParams{}, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	var params OrderEventParams
	values := ctx.Request().Header.Values("X-Actor-ID")
	switch len(values) {
	case 0:
		return orderID, params, echo.NewHTTPError(http.StatusBadRequest,
			"Header parameter X-Actor-ID is required, but not found")
	case 1:
	default:
		return orderID, params, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Expected one value for X-Actor-ID, got %d", len(values)))
	}

	err = runtime.BindStyledParameterWithOptions("simple", "X-Actor-ID", values[0], &params.XActorID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return orderID, params, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter X-Actor-ID: %s", err))
	}

	return orderID, params, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for routing.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts both operations under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/orders/:orderId/events", wrapper.CreateOrderEvent)
	router.GET(baseURL+"/api/v1/orders/:orderId/events", wrapper.ListOrderEvents)
}
