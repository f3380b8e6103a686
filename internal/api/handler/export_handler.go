package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventory-console/inventory-api/internal/core/ports"
	"github.com/inventory-console/inventory-api/internal/infrastructure/export"
)

// ExportHandler streams spreadsheet exports.
type ExportHandler struct {
	service ports.ExportService
}

func NewExportHandler(service ports.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export handles POST /export-excel.
//
// @Summary      Export selected products to Excel
// @Tags         export
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        body  body      exportRequest  true  "Product ids to export"
// @Success      200   {file}    binary
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /export-excel [post]
func (h *ExportHandler) Export(c echo.Context) error {
	var req exportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no products selected").SetInternal(err)
	}

	data, err := h.service.Export(c.Request().Context(), req.ProductIDs)
	if err != nil {
		return toHTTPError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+export.Filename)
	return c.Blob(http.StatusOK, export.ContentType, data)
}
