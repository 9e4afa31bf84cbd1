package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/service"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

type productRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	QuantityAvailable *int    `json:"quantity_available"`
	ImageURL          string  `json:"image_url"`
}

func (r productRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:              r.Name,
		Description:       r.Description,
		Price:             r.Price,
		QuantityAvailable: r.QuantityAvailable,
		ImageURL:          r.ImageURL,
	}
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	product, err := h.Svc.Create(ctx, req.toInput())
	if err != nil {
		return fail(c, err)
	}

	l.Info("product_created", "product_id", product.ID)
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Product created successfully",
		"data":    product,
	})
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	product, err := h.Svc.Update(ctx, id, req.toInput())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Product updated successfully",
		"data":    product,
	})
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Product deleted successfully"})
}

func (h *ProductHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	product, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

func (h *ProductHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	result, err := h.Svc.List(ctx, page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Products retrieved successfully",
		"data":    result.Items,
		"meta": echo.Map{
			"page":        result.Page,
			"size":        result.Size,
			"total":       result.Total,
			"total_pages": result.TotalPages,
		},
	})
}

func (h *ProductHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()

	q := c.QueryParam("q")
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	total, products, err := h.Svc.Search(ctx, q, page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
