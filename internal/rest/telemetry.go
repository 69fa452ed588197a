package rest

import (
	"net/http"

	"mediSense/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	TelemetryHandler struct {
		service TelemetryService
	}

	TelemetryService interface {
		Status() domain.LogisticsStatus
	}
)

type ResponseError struct {
	Message string `json:"message"`
}

func NewTelemetryHandler(service TelemetryService) *TelemetryHandler {
	return &TelemetryHandler{
		service: service,
	}
}

// GET /api/v1/logistics/status
func (h *TelemetryHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.service.Status()))
}
