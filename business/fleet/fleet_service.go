package fleet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mediSense/domain"
	"mediSense/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrRouteNotFound   = errors.New("route not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// FleetRepository contract interface
type FleetRepository interface {
	FindAll(ctx context.Context) ([]domain.FleetVehicle, error)
	Assign(ctx context.Context, vehicleID, routeID, cargo string) (domain.FleetVehicle, error)
}

// RouteCatalog is consulted to reject dispatches onto unknown routes.
type RouteCatalog interface {
	FindByID(ctx context.Context, id string) (domain.Route, error)
}

type fleetService struct {
	fleetRepo FleetRepository
	catalog   RouteCatalog
}

func NewFleetService(fleetRepo FleetRepository, catalog RouteCatalog) *fleetService {
	return &fleetService{
		fleetRepo: fleetRepo,
		catalog:   catalog,
	}
}

func (s *fleetService) ListVehicles(ctx context.Context) ([]domain.FleetVehicle, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing fleet")
		return nil, fmt.Errorf("context error: %w", err)
	}

	vehicles, err := s.fleetRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to list fleet", err)
		return nil, err
	}

	return vehicles, nil
}

// Dispatch assigns a vehicle to a catalog route and returns the order
// confirmation. The roster update is last-write-wins; orders themselves
// are not retained.
func (s *fleetService) Dispatch(ctx context.Context, vehicleID, routeID, cargo, priority string) (domain.DispatchOrder, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when dispatching vehicle")
		return domain.DispatchOrder{}, fmt.Errorf("context error: %w", err)
	}

	if vehicleID == "" || routeID == "" {
		logger.Error("invalid dispatch: vehicle id and route id are required")
		return domain.DispatchOrder{}, errors.New("vehicle id and route id are required")
	}

	route, err := s.catalog.FindByID(ctx, routeID)
	if err != nil {
		logger.Error("dispatch rejected: route not found", "route_id", routeID)
		return domain.DispatchOrder{}, ErrRouteNotFound
	}

	vehicle, err := s.fleetRepo.Assign(ctx, vehicleID, route.ID, cargo)
	if err != nil {
		logger.Error("dispatch rejected", err)
		return domain.DispatchOrder{}, ErrVehicleNotFound
	}

	order := domain.DispatchOrder{
		OrderID:   uuid.NewString(),
		VehicleID: vehicle.ID,
		RouteID:   route.ID,
		Cargo:     cargo,
		Priority:  priority,
		Status:    "dispatched",
		CreatedAt: time.Now(),
	}

	logger.Info("vehicle dispatched", "vehicle_id", vehicle.ID, "route_id", route.ID, "order_id", order.OrderID)

	return order, nil
}
