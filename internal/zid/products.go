package zid

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ngenohkevin/zid-admin/internal/models"
)

func (c *Client) GetProducts(ctx context.Context, params models.ProductListParams) (json.RawMessage, error) {
	q := query{}
	q.setInt("page", params.Page)
	q.setInt("page_size", params.PageSize)
	q.setString("category_id", params.CategoryID)
	q.setString("search", params.Search)
	return c.getJSON(ctx, "list_products", withQuery("/products", q))
}

func (c *Client) GetProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return c.getJSON(ctx, "get_product", resourcePath("products", productID))
}

func (c *Client) CreateProduct(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return c.sendJSON(ctx, "create_product", http.MethodPost, "/products", data)
}

func (c *Client) UpdateProduct(ctx context.Context, productID string, data interface{}) (json.RawMessage, error) {
	return c.sendJSON(ctx, "update_product", http.MethodPut, resourcePath("products", productID), data)
}

func (c *Client) DeleteProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return c.sendJSON(ctx, "delete_product", http.MethodDelete, resourcePath("products", productID), nil)
}

func (c *Client) GetProductStock(ctx context.Context, productID string) (json.RawMessage, error) {
	return c.getJSON(ctx, "get_product_stock", resourcePath("products", productID, "stock"))
}

func (c *Client) UpdateProductStock(ctx context.Context, productID string, data interface{}) (json.RawMessage, error) {
	return c.sendJSON(ctx, "update_product_stock", http.MethodPut, resourcePath("products", productID, "stock"), data)
}
