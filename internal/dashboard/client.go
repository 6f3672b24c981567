package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ngenohkevin/zid-admin/internal/models"
)

// Client builds request thunks against a running gateway
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(path string, q url.Values) RequestFunc {
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.send(http.MethodGet, path, nil)
}

func (c *Client) send(method, path string, payload interface{}) RequestFunc {
	return func(ctx context.Context) (*http.Response, error) {
		var body io.Reader
		if payload != nil {
			data, err := json.Marshal(payload)
			if err != nil {
				return nil, fmt.Errorf("failed to encode request: %w", err)
			}
			body = bytes.NewReader(data)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		return c.httpClient.Do(req)
	}
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

func setString(q url.Values, key string, v *string) {
	if v != nil && *v != "" {
		q.Set(key, *v)
	}
}

func idPath(collection, id string, sub ...string) string {
	parts := append([]string{"/api", collection, url.PathEscape(id)}, sub...)
	return strings.Join(parts, "/")
}

func (c *Client) Login(username, password string) RequestFunc {
	return c.send(http.MethodPost, "/api/auth/login", models.LoginRequest{Username: username, Password: password})
}

func (c *Client) Logout() RequestFunc {
	return c.send(http.MethodPost, "/api/auth/logout", nil)
}

func (c *Client) ListOrders(params models.OrderListParams) RequestFunc {
	q := url.Values{}
	setInt(q, "page", params.Page)
	setInt(q, "page_size", params.PageSize)
	setString(q, "status", params.Status)
	setString(q, "date_from", params.DateFrom)
	setString(q, "date_to", params.DateTo)
	return c.get("/api/orders", q)
}

func (c *Client) GetOrder(orderID string) RequestFunc {
	return c.get(idPath("orders", orderID), nil)
}

func (c *Client) UpdateOrder(orderID string, data interface{}) RequestFunc {
	return c.send(http.MethodPut, idPath("orders", orderID), data)
}

func (c *Client) ListProducts(params models.ProductListParams) RequestFunc {
	q := url.Values{}
	setInt(q, "page", params.Page)
	setInt(q, "page_size", params.PageSize)
	setString(q, "category_id", params.CategoryID)
	setString(q, "search", params.Search)
	return c.get("/api/products", q)
}

func (c *Client) GetProduct(productID string) RequestFunc {
	return c.get(idPath("products", productID), nil)
}

func (c *Client) DeleteProduct(productID string) RequestFunc {
	return c.send(http.MethodDelete, idPath("products", productID), nil)
}

func (c *Client) BulkDeleteProducts(productIDs []string) RequestFunc {
	return c.send(http.MethodPost, "/api/products/bulk-delete", models.BulkDeleteRequest{ProductIDs: productIDs})
}

func (c *Client) DuplicateProduct(productID string) RequestFunc {
	return c.send(http.MethodPost, idPath("products", productID, "duplicate"), nil)
}

func (c *Client) GetProductStock(productID string) RequestFunc {
	return c.get(idPath("products", productID, "stock"), nil)
}

func (c *Client) ListCustomers(params models.CustomerListParams) RequestFunc {
	q := url.Values{}
	setInt(q, "page", params.Page)
	setInt(q, "page_size", params.PageSize)
	setString(q, "search", params.Search)
	return c.get("/api/customers", q)
}

func (c *Client) GetCustomer(customerID string) RequestFunc {
	return c.get(idPath("customers", customerID), nil)
}

func (c *Client) CustomerStats() RequestFunc {
	return c.get("/api/customers/stats", nil)
}

func (c *Client) SendCustomerEmail(customerID, email, subject, message string) RequestFunc {
	return c.send(http.MethodPost, "/api/customers/send-email", map[string]string{
		"customer_id": customerID,
		"email":       email,
		"subject":     subject,
		"message":     message,
	})
}

func (c *Client) ListCategories() RequestFunc {
	return c.get("/api/categories", nil)
}

func (c *Client) ListLocations() RequestFunc {
	return c.get("/api/locations", nil)
}

func (c *Client) ListWebhooks() RequestFunc {
	return c.get("/api/webhooks", nil)
}

func (c *Client) TestWebhook(webhookID string) RequestFunc {
	return c.send(http.MethodPost, idPath("webhooks", webhookID, "test"), nil)
}

func (c *Client) ListAudit(resource string, limit int) RequestFunc {
	q := url.Values{}
	if resource != "" {
		q.Set("resource", resource)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return c.get("/api/audit", q)
}
