package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/zid"
)

// OrderHandler relays order requests to the commerce API
type OrderHandler struct {
	orders zid.OrderAPI
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders zid.OrderAPI) *OrderHandler {
	return &OrderHandler{
		orders: orders,
	}
}

// ListOrders lists orders
// @Summary List orders
// @Description Get a page of orders from the store
// @Tags orders
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Items per page"
// @Param status query string false "Order status filter"
// @Param date_from query string false "Created on or after"
// @Param date_to query string false "Created on or before"
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	params := parseOrderListParams(c)

	orders, err := h.orders.GetOrders(c.Request.Context(), params)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, listPayload(orders, params.Page, params.PageSize), "")
}

// CreateOrder creates an order
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	body, err := bindBody(c)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	items, _ := body["items"].([]interface{})
	if ValidateRequired(RequiredFields(body, "customer_id")...) != "" || len(items) == 0 {
		respondValidationError(c, "Customer ID and items are required")
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), body)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, order, "Order created successfully")
}

// GetOrder retrieves an order by ID
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, order, "")
}

// UpdateOrder updates an order, typically its status
// @Summary Update an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	body, err := bindBody(c)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	order, err := h.orders.UpdateOrder(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, order, "Order updated successfully")
}
