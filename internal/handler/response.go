package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the wire format of the submission endpoint: success flag
// plus a human-readable message. Failures ride in the same envelope
// with HTTP 200, matching what the form frontend has always consumed;
// no structured error codes cross this boundary.
type Envelope struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
}

func respondSuccess(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: msg})
}

func respondFailure(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, Envelope{Success: false, Data: msg})
}
