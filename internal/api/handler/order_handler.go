package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/orders-api/internal/core/ports"
	"github.com/storefront/orders-api/pkg/pagination"
)

// OrderHandler handles HTTP requests for order operations. Domain errors are
// returned as-is and mapped centrally by the API error handler.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        tags   query     string  false  "Filter by tags"
// @Param        page   query     int     false  "Page number (default 1)"
// @Param        limit  query     int     false  "Page size (default 10)"
// @Success      200    {array}   orderResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	params := pagination.Parse(c.QueryParam("page"), c.QueryParam("limit"))

	result, err := h.service.ListOrders(c.Request().Context(), ports.ListOrdersInput{
		Tags:  c.QueryParam("tags"),
		Page:  params.Page,
		Limit: params.Limit,
	})
	if err != nil {
		return err
	}

	setLinkHeader(c, params, result.Total)
	return c.JSON(http.StatusOK, toOrderListResponse(result))
}

// Get handles GET /orders/:orderId.
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path      string  true  "Order id"
// @Success      200      {object}  orderResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /orders/{orderId} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	view, err := h.service.GetOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(view, ""))
}

// Create handles POST /orders.
//
// @Summary      Create a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.CreateOrder(c.Request().Context(), toCreateOrderInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(view, "order created"))
}

// Update handles PUT /orders/:orderId.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path      string              true  "Order id"
// @Param        body     body      updateOrderRequest  true  "Full order body including status"
// @Success      200      {object}  orderResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /orders/{orderId} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.UpdateOrder(c.Request().Context(), c.Param("orderId"), toUpdateOrderInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(view, "order update"))
}

// Delete handles DELETE /orders/:orderId.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path      string  true  "Order id"
// @Success      200      {object}  orderResponse
// @Failure      404      {object}  errorResponse
// @Router       /orders/{orderId} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	view, err := h.service.DeleteOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(view, "order delete"))
}

// setLinkHeader attaches prev/next navigation computed from the request URL.
func setLinkHeader(c echo.Context, params pagination.Params, total int64) {
	links := pagination.BuildLinks(c.Request().URL.String(), params, total)
	if header := links.Header(); header != "" {
		c.Response().Header().Set("Link", header)
	}
}
