package zid

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ngenohkevin/zid-admin/internal/models"
)

func (c *Client) GetOrders(ctx context.Context, params models.OrderListParams) (json.RawMessage, error) {
	q := query{}
	q.setInt("page", params.Page)
	q.setInt("page_size", params.PageSize)
	q.setString("status", params.Status)
	q.setString("date_from", params.DateFrom)
	q.setString("date_to", params.DateTo)
	return c.getJSON(ctx, "list_orders", withQuery("/orders", q))
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	return c.getJSON(ctx, "get_order", resourcePath("orders", orderID))
}

func (c *Client) CreateOrder(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return c.sendJSON(ctx, "create_order", http.MethodPost, "/orders", data)
}

func (c *Client) UpdateOrder(ctx context.Context, orderID string, data interface{}) (json.RawMessage, error) {
	return c.sendJSON(ctx, "update_order", http.MethodPut, resourcePath("orders", orderID), data)
}
