package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventory-console/inventory-api/internal/core/ports"
)

// ProductHandler handles catalog listing and the admin mutations.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   productResponse
// @Failure      500  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name      formData  string  true  "Product name"
// @Param        category  formData  string  true  "Category"
// @Param        price     formData  number  true  "Price, >= 0"
// @Param        stock     formData  integer true  "Stock, >= 0"
// @Param        image     formData  file    true  "Product image"
// @Success      201  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	upload, done, err := formImage(c)
	if err != nil {
		return err
	}
	defer done()

	product, err := h.service.Create(c.Request().Context(), caller(c), formFields(c), upload)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id. The image part is optional.
//
// @Summary      Update a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true   "Product id"
// @Param        name      formData  string  true   "Product name"
// @Param        category  formData  string  true   "Category"
// @Param        price     formData  number  true   "Price, >= 0"
// @Param        stock     formData  integer true   "Stock, >= 0"
// @Param        image     formData  file    false  "Replacement image"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	upload, done, err := formImage(c)
	if err != nil {
		return err
	}
	defer done()

	product, err := h.service.Update(c.Request().Context(), caller(c), c.Param("id"), formFields(c), upload)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id   path  string  true  "Product id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), caller(c), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func formFields(c echo.Context) ports.ProductFields {
	return ports.ProductFields{
		Name:     c.FormValue("name"),
		Category: c.FormValue("category"),
		Price:    c.FormValue("price"),
		Stock:    c.FormValue("stock"),
	}
}

// formImage opens the optional "image" part. done must be called once the
// upload has been consumed.
func formImage(c echo.Context) (*ports.Upload, func(), error) {
	noop := func() {}

	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form").SetInternal(err)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload").SetInternal(err)
	}
	return &ports.Upload{Filename: fh.Filename, Content: f}, func() { _ = f.Close() }, nil
}
