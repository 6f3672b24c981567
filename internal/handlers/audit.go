package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/services"
)

type AuditHandler struct {
	auditService services.AuditServiceInterface
}

func NewAuditHandler(auditService services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// ListAuditEntries lists recent mutating requests, newest first
// @Summary List audit entries
// @Tags audit
// @Produce json
// @Param resource query string false "Resource filter, e.g. products"
// @Param limit query int false "Maximum entries"
// @Param offset query int false "Entries to skip"
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/audit [get]
func (h *AuditHandler) ListAuditEntries(c *gin.Context) {
	params := models.AuditListParams{
		Resource: c.Query("resource"),
	}
	if limit := queryInt(c, "limit"); limit != nil {
		params.Limit = *limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		params.Offset = offset
	}

	entries, err := h.auditService.List(c.Request.Context(), params)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	respondSuccess(c, entries, "")
}
