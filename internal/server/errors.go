// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorHandler normalizes all unhandled errors to JSON. Infrastructure
// failures answer with a generic message; detail stays in the server log.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error."

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, isString := httpErr.Message.(string); isString {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		slog.Error("request_failed", "error", err, "uri", c.Request().RequestURI)
		message = "Internal server error."
	}

	if jsonErr := c.JSON(code, map[string]string{"error": message}); jsonErr != nil {
		slog.Error("failed to write error response", "error", jsonErr)
	}
}
