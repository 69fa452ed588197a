package router

import (
	"mediSense/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupLogisticsRoutes(
	api *echo.Group,
	telemetryHandler *rest.TelemetryHandler,
	routeHandler *rest.RouteCatalogHandler,
	fleetHandler *rest.FleetHandler,
	analysisHandler *rest.AnalysisHandler,
) {
	logistics := api.Group("/logistics")

	logistics.GET("/status", telemetryHandler.Status)
	logistics.GET("/routes", routeHandler.List)
	logistics.GET("/fleet", fleetHandler.List)
	logistics.POST("/dispatch", fleetHandler.Dispatch)
	logistics.POST("/analyze", analysisHandler.Analyze)
}
