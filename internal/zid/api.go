package zid

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ngenohkevin/zid-admin/internal/models"
)

// OrderAPI covers the order operations of the commerce API
type OrderAPI interface {
	GetOrders(ctx context.Context, params models.OrderListParams) (json.RawMessage, error)
	GetOrder(ctx context.Context, orderID string) (json.RawMessage, error)
	CreateOrder(ctx context.Context, data interface{}) (json.RawMessage, error)
	UpdateOrder(ctx context.Context, orderID string, data interface{}) (json.RawMessage, error)
}

// ProductAPI covers products and their stock levels
type ProductAPI interface {
	GetProducts(ctx context.Context, params models.ProductListParams) (json.RawMessage, error)
	GetProduct(ctx context.Context, productID string) (json.RawMessage, error)
	CreateProduct(ctx context.Context, data interface{}) (json.RawMessage, error)
	UpdateProduct(ctx context.Context, productID string, data interface{}) (json.RawMessage, error)
	DeleteProduct(ctx context.Context, productID string) (json.RawMessage, error)
	GetProductStock(ctx context.Context, productID string) (json.RawMessage, error)
	UpdateProductStock(ctx context.Context, productID string, data interface{}) (json.RawMessage, error)
}

// CustomerAPI covers customers, their stats and outbound email
type CustomerAPI interface {
	GetCustomers(ctx context.Context, params models.CustomerListParams) (json.RawMessage, error)
	GetCustomer(ctx context.Context, customerID string) (json.RawMessage, error)
	CreateCustomer(ctx context.Context, data interface{}) (json.RawMessage, error)
	UpdateCustomer(ctx context.Context, customerID string, data interface{}) (json.RawMessage, error)
	DeleteCustomer(ctx context.Context, customerID string) (json.RawMessage, error)
	GetCustomerStats(ctx context.Context) (json.RawMessage, error)
	SendCustomerEmail(ctx context.Context, data interface{}) (json.RawMessage, error)
	ImportCustomers(ctx context.Context, filename string, file io.Reader) (json.RawMessage, error)
}

// CatalogAPI covers categories and stock locations
type CatalogAPI interface {
	GetCategories(ctx context.Context) (json.RawMessage, error)
	GetCategory(ctx context.Context, categoryID string) (json.RawMessage, error)
	CreateCategory(ctx context.Context, data interface{}) (json.RawMessage, error)
	GetLocations(ctx context.Context) (json.RawMessage, error)
}

type WebhookAPI interface {
	GetWebhooks(ctx context.Context) (json.RawMessage, error)
	CreateWebhook(ctx context.Context, data interface{}) (json.RawMessage, error)
	DeleteWebhook(ctx context.Context, webhookID string) (json.RawMessage, error)
	TestWebhook(ctx context.Context, webhookID string) (json.RawMessage, error)
}

// API is the full surface of the commerce API used by the gateway
type API interface {
	OrderAPI
	ProductAPI
	CustomerAPI
	CatalogAPI
	WebhookAPI
}

var _ API = (*Client)(nil)
