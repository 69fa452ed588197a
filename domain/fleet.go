package domain

import "time"

// FleetVehicle is one entry of the in-memory fleet roster.
type FleetVehicle struct {
	ID         string `json:"id"`
	Callsign   string `json:"callsign"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	RouteID    string `json:"routeId"`
	Cargo      string `json:"cargo"`
	ETAMinutes int    `json:"etaMinutes"`
}

// DispatchOrder confirms a dispatch request. Orders are not persisted;
// the ID exists so the dashboard can reference the confirmation.
type DispatchOrder struct {
	OrderID   string    `json:"orderId"`
	VehicleID string    `json:"vehicleId"`
	RouteID   string    `json:"routeId"`
	Cargo     string    `json:"cargo"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
