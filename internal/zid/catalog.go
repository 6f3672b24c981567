package zid

import (
	"context"
	"encoding/json"
	"net/http"
)

func (c *Client) GetCategories(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "list_categories", "/categories")
}

func (c *Client) GetCategory(ctx context.Context, categoryID string) (json.RawMessage, error) {
	return c.getJSON(ctx, "get_category", resourcePath("categories", categoryID))
}

func (c *Client) CreateCategory(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return c.sendJSON(ctx, "create_category", http.MethodPost, "/categories", data)
}

func (c *Client) GetLocations(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "list_locations", "/locations")
}

func (c *Client) GetWebhooks(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "list_webhooks", "/webhooks")
}

func (c *Client) CreateWebhook(ctx context.Context, data interface{}) (json.RawMessage, error) {
	return c.sendJSON(ctx, "create_webhook", http.MethodPost, "/webhooks", data)
}

func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) (json.RawMessage, error) {
	return c.sendJSON(ctx, "delete_webhook", http.MethodDelete, resourcePath("webhooks", webhookID), nil)
}

func (c *Client) TestWebhook(ctx context.Context, webhookID string) (json.RawMessage, error) {
	return c.sendJSON(ctx, "test_webhook", http.MethodPost, resourcePath("webhooks", webhookID, "test"), nil)
}
