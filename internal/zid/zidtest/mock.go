// Package zidtest provides a testify mock of the commerce API client.
package zidtest

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/zid"
	"github.com/stretchr/testify/mock"
)

type MockAPI struct {
	mock.Mock
}

var _ zid.API = (*MockAPI)(nil)

// Raw builds a json.RawMessage for use in Return
func Raw(s string) json.RawMessage {
	return json.RawMessage(s)
}

func (m *MockAPI) result(args mock.Arguments) (json.RawMessage, error) {
	var raw json.RawMessage
	if v := args.Get(0); v != nil {
		switch r := v.(type) {
		case json.RawMessage:
			raw = r
		case string:
			raw = json.RawMessage(r)
		}
	}
	return raw, args.Error(1)
}

func (m *MockAPI) GetOrders(ctx context.Context, params models.OrderListParams) (json.RawMessage, error) {
	return m.result(m.Called(ctx, params))
}

func (m *MockAPI) GetOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	return m.result(m.Called(ctx, orderID))
}

func (m *MockAPI) CreateOrder(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return m.result(m.Called(ctx, data))
}

func (m *MockAPI) UpdateOrder(ctx context.Context, orderID string, data interface{}) (json.RawMessage, error) {
	return m.result(m.Called(ctx, orderID, data))
}

func (m *MockAPI) GetProducts(ctx context.Context, params models.ProductListParams) (json.RawMessage, error) {
	return m.result(m.Called(ctx, params))
}

func (m *MockAPI) GetProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return m.result(m.Called(ctx, productID))
}

func (m *MockAPI) CreateProduct(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return m.result(m.Called(ctx, data))
}

func (m *MockAPI) UpdateProduct(ctx context.Context, productID string, data interface{}) (json.RawMessage, error) {
	return m.result(m.Called(ctx, productID, data))
}

func (m *MockAPI) DeleteProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return m.result(m.Called(ctx, productID))
}

func (m *MockAPI) GetProductStock(ctx context.Context, productID string) (json.RawMessage, error) {
	return m.result(m.Called(ctx, productID))
}

func (m *MockAPI) UpdateProductStock(ctx context.Context, productID string, data interface{}) (json.RawMessage, error) {
	return m.result(m.Called(ctx, productID, data))
}

func (m *MockAPI) GetCustomers(ctx context.Context, params models.CustomerListParams) (json.RawMessage, error) {
	return m.result(m.Called(ctx, params))
}

func (m *MockAPI) GetCustomer(ctx context.Context, customerID string) (json.RawMessage, error) {
	return m.result(m.Called(ctx, customerID))
}

func (m *MockAPI) CreateCustomer(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return m.result(m.Called(ctx, data))
}

func (m *MockAPI) UpdateCustomer(ctx context.Context, customerID string, data interface{}) (json.RawMessage, error) {
	return m.result(m.Called(ctx, customerID, data))
}

func (m *MockAPI) DeleteCustomer(ctx context.Context, customerID string) (json.RawMessage, error) {
	return m.result(m.Called(ctx, customerID))
}

func (m *MockAPI) GetCustomerStats(ctx context.Context) (json.RawMessage, error) {
	return m.result(m.Called(ctx))
}

func (m *MockAPI) SendCustomerEmail(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return m.result(m.Called(ctx, data))
}

func (m *MockAPI) ImportCustomers(ctx context.Context, filename string, file io.Reader) (json.RawMessage, error) {
	return m.result(m.Called(ctx, filename, file))
}

func (m *MockAPI) GetCategories(ctx context.Context) (json.RawMessage, error) {
	return m.result(m.Called(ctx))
}

func (m *MockAPI) GetCategory(ctx context.Context, categoryID string) (json.RawMessage, error) {
	return m.result(m.Called(ctx, categoryID))
}

func (m *MockAPI) CreateCategory(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return m.result(m.Called(ctx, data))
}

func (m *MockAPI) GetLocations(ctx context.Context) (json.RawMessage, error) {
	return m.result(m.Called(ctx))
}

func (m *MockAPI) GetWebhooks(ctx context.Context) (json.RawMessage, error) {
	return m.result(m.Called(ctx))
}

func (m *MockAPI) CreateWebhook(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return m.result(m.Called(ctx, data))
}

func (m *MockAPI) DeleteWebhook(ctx context.Context, webhookID string) (json.RawMessage, error) {
	return m.result(m.Called(ctx, webhookID))
}

func (m *MockAPI) TestWebhook(ctx context.Context, webhookID string) (json.RawMessage, error) {
	return m.result(m.Called(ctx, webhookID))
}
