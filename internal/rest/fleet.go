package rest

import (
	"context"
	"errors"
	"net/http"

	"mediSense/business/fleet"
	"mediSense/domain"
	"mediSense/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	FleetHandler struct {
		validate     *validator.Validate
		fleetService FleetService
	}

	FleetService interface {
		ListVehicles(ctx context.Context) ([]domain.FleetVehicle, error)
		Dispatch(ctx context.Context, vehicleID, routeID, cargo, priority string) (domain.DispatchOrder, error)
	}

	DispatchRequest struct {
		VehicleID string `json:"vehicleId" validate:"required"`
		RouteID   string `json:"routeId" validate:"required"`
		Cargo     string `json:"cargo" validate:"required"`
		Priority  string `json:"priority" validate:"required,oneof=Critical Standard"`
	}
)

func NewFleetHandler(fleetService FleetService) *FleetHandler {
	return &FleetHandler{
		validate:     validator.New(),
		fleetService: fleetService,
	}
}

// GET /api/v1/logistics/fleet
func (h *FleetHandler) List(c echo.Context) error {
	vehicles, err := h.fleetService.ListVehicles(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(vehicles))
}

// POST /api/v1/logistics/dispatch
func (h *FleetHandler) Dispatch(c echo.Context) error {
	var req DispatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	order, err := h.fleetService.Dispatch(c.Request().Context(), req.VehicleID, req.RouteID, req.Cargo, req.Priority)
	if err != nil {
		if errors.Is(err, fleet.ErrRouteNotFound) || errors.Is(err, fleet.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.DispatchTotal.Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(order))
}
