package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	calc "github.com/aw-devel/Tacton-Code-Test-A"
)

// errorHandler maps evaluator error types to HTTP responses: invalid input is
// the client's fault (400), division by zero is a valid expression that
// cannot be computed (422), and anything else is a server error.
func errorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ie calc.InputError
		if errors.As(err, &ie) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ie.Error(), "title": "invalid expression"})
			return
		}

		var dz *calc.DivisionByZeroError
		if errors.As(err, &dz) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": dz.Error(), "title": "unprocessable expression"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
