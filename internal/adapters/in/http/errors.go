package http

import (
	"errors"
	"net/http"

	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// KindMalformedRequest is reported for requests rejected before reaching a
// use case.
const KindMalformedRequest = "MalformedRequest"

var kindResponses = map[errs.Kind]struct {
	code    int
	message string
}{
	errs.KindNotFound:        {http.StatusNotFound, "Order or actor not found"},
	errs.KindInvalidStatus:   {http.StatusUnprocessableEntity, "Status is not recognized"},
	errs.KindForbiddenAccess: {http.StatusForbidden, "Access to the order is forbidden"},
	errs.KindUnexpected:      {http.StatusInternalServerError, "Internal error"},
}

// failure writes the response for a failed use case. Only the kind and a
// fixed message leave the process; details stay in the logs.
func failure(ctx echo.Context, err error) error {
	kind := errs.KindOf(err)
	resp := kindResponses[kind]
	return ctx.JSON(resp.code, Error{Code: resp.code, Kind: kind.String(), Message: resp.message})
}

func malformedRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Kind:    KindMalformedRequest,
		Message: message,
	})
}

// errorHandler renders errors returned by handlers and middleware with the
// same body as use case failures.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	kind := errs.KindUnexpected.String()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
		switch {
		case code == http.StatusNotFound:
			kind = errs.KindNotFound.String()
		case code < http.StatusInternalServerError:
			kind = KindMalformedRequest
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, Error{Code: code, Kind: kind, Message: message})
}
