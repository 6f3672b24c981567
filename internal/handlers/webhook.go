package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/zid"
)

// WebhookHandler manages the store's webhook subscriptions
type WebhookHandler struct {
	webhooks zid.WebhookAPI
}

func NewWebhookHandler(webhooks zid.WebhookAPI) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

func (h *WebhookHandler) ListWebhooks(c *gin.Context) {
	webhooks, err := h.webhooks.GetWebhooks(c.Request.Context())
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, listPayload(webhooks, nil, nil), "")
}

func (h *WebhookHandler) CreateWebhook(c *gin.Context) {
	body, err := bindBody(c)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	if msg := ValidateRequired(RequiredFields(body, "url")...); msg != "" {
		respondValidationError(c, msg)
		return
	}

	webhook, err := h.webhooks.CreateWebhook(c.Request.Context(), body)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, webhook, "Webhook created successfully")
}

func (h *WebhookHandler) DeleteWebhook(c *gin.Context) {
	if _, err := h.webhooks.DeleteWebhook(c.Request.Context(), c.Param("id")); err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, nil, "Webhook deleted successfully")
}

// TestWebhook asks the store to fire a test delivery
func (h *WebhookHandler) TestWebhook(c *gin.Context) {
	result, err := h.webhooks.TestWebhook(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, result, "Test delivery sent")
}
