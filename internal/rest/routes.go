package rest

import (
	"context"
	"net/http"

	"mediSense/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	RouteCatalogHandler struct {
		catalog RouteCatalog
	}

	RouteCatalog interface {
		FindAll(ctx context.Context) ([]domain.Route, error)
	}
)

func NewRouteCatalogHandler(catalog RouteCatalog) *RouteCatalogHandler {
	return &RouteCatalogHandler{
		catalog: catalog,
	}
}

// GET /api/v1/logistics/routes
func (h *RouteCatalogHandler) List(c echo.Context) error {
	routes, err := h.catalog.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(routes))
}
