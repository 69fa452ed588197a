package memory

import (
	"context"
	"errors"
	"sync"

	"mediSense/domain"
)

// FleetRepository holds the simulated fleet roster in memory. Updates are
// atomic per request and last-write-wins; nothing survives a restart.
type FleetRepository struct {
	mu       sync.RWMutex
	vehicles []domain.FleetVehicle
}

func NewFleetRepository() *FleetRepository {
	return &FleetRepository{
		vehicles: []domain.FleetVehicle{
			{ID: "MSV-101", Callsign: "Lifeline One", Type: "ambulance", Status: "en-route", RouteID: "alpha", Cargo: "blood units", ETAMinutes: 9},
			{ID: "MSV-102", Callsign: "Coldline Two", Type: "cold-chain van", Status: "loading", RouteID: "beta", Cargo: "vaccines", ETAMinutes: 24},
			{ID: "MSV-103", Callsign: "Supply Three", Type: "supply truck", Status: "idle", RouteID: "", Cargo: "", ETAMinutes: 0},
			{ID: "MSV-104", Callsign: "Lifeline Four", Type: "ambulance", Status: "idle", RouteID: "", Cargo: "", ETAMinutes: 0},
		},
	}
}

func (r *FleetRepository) FindAll(ctx context.Context) ([]domain.FleetVehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.FleetVehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out, nil
}

// Assign puts a vehicle on a route. Repeated assignments simply overwrite
// the previous one.
func (r *FleetRepository) Assign(ctx context.Context, vehicleID, routeID, cargo string) (domain.FleetVehicle, error) {
	if err := ctx.Err(); err != nil {
		return domain.FleetVehicle{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vehicles {
		if r.vehicles[i].ID != vehicleID {
			continue
		}
		r.vehicles[i].Status = "en-route"
		r.vehicles[i].RouteID = routeID
		r.vehicles[i].Cargo = cargo
		return r.vehicles[i], nil
	}

	return domain.FleetVehicle{}, errors.New("vehicle not found")
}
