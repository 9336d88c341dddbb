package handler

import (
	"log/slog"
	"net/http"

	"souq/internal/delivery/http/response"
	"souq/internal/domain/entity"
	"souq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for category attribute handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// filtersResponse keys the resolved definitions under "attributes" in the
// success envelope.
type filtersResponse struct {
	Attributes []entity.AttributeDefinition `json:"attributes"`
}

// ResolveFilters returns the category's effective storefront filter set,
// merged down the ancestor chain.
func (h *CatalogHandler) ResolveFilters(c echo.Context) error {
	categoryID, err := pathUUID(c, "categoryId")
	if err != nil {
		return errors.WithStack(err)
	}

	filters, err := h.uc.ResolveFilters(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}
	if filters == nil {
		// The storefront always receives an array, never null.
		filters = []entity.AttributeDefinition{}
	}

	return response.Success(c, http.StatusOK, filtersResponse{Attributes: filters})
}

// ReplaceAttributes swaps a category's own attribute definitions. Staff only.
func (h *CatalogHandler) ReplaceAttributes(c echo.Context) error {
	categoryID, err := pathUUID(c, "categoryId")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.ReplaceAttributesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid attribute input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.ReplaceAttributes(c.Request().Context(), categoryID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category)
}
