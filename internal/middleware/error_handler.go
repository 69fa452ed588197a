package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"mediSense/internal/rest"
	"mediSense/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo-wide fallback for errors that escape handlers.
// Handlers answer their own known failure modes; anything reaching here is
// logged and mapped to a JSON body so the dashboard never sees a bare 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)

	if jsonErr := c.JSON(code, rest.ResponseError{Message: message}); jsonErr != nil {
		logger.Error("failed to write error response", jsonErr)
	}
}
