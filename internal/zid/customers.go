package zid

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/ngenohkevin/zid-admin/internal/models"
)

func (c *Client) GetCustomers(ctx context.Context, params models.CustomerListParams) (json.RawMessage, error) {
	q := query{}
	q.setInt("page", params.Page)
	q.setInt("page_size", params.PageSize)
	q.setString("search", params.Search)
	return c.getJSON(ctx, "list_customers", withQuery("/customers", q))
}

func (c *Client) GetCustomer(ctx context.Context, customerID string) (json.RawMessage, error) {
	return c.getJSON(ctx, "get_customer", resourcePath("customers", customerID))
}

func (c *Client) CreateCustomer(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return c.sendJSON(ctx, "create_customer", http.MethodPost, "/customers", data)
}

func (c *Client) UpdateCustomer(ctx context.Context, customerID string, data interface{}) (json.RawMessage, error) {
	return c.sendJSON(ctx, "update_customer", http.MethodPut, resourcePath("customers", customerID), data)
}

func (c *Client) DeleteCustomer(ctx context.Context, customerID string) (json.RawMessage, error) {
	return c.sendJSON(ctx, "delete_customer", http.MethodDelete, resourcePath("customers", customerID), nil)
}

func (c *Client) GetCustomerStats(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "customer_stats", "/customers/stats")
}

func (c *Client) SendCustomerEmail(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return c.sendJSON(ctx, "send_customer_email", http.MethodPost, "/customers/send-email", data)
}

// ImportCustomers uploads a CSV/Excel file as multipart form field "file"
func (c *Client) ImportCustomers(ctx context.Context, filename string, file io.Reader) (json.RawMessage, error) {
	return c.sendMultipart(ctx, "import_customers", "/customers/import", "file", filename, file)
}
