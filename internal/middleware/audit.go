package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/services"
)

// Audit records every mutating request once the handler has written its
// response. Reads are not recorded.
func Audit(auditService services.AuditServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if auditService == nil || !isMutating(c.Request.Method) {
			return
		}

		resource, resourceID := auditResource(c)
		auditService.Record(models.AuditEntry{
			RequestID:  GetRequestID(c),
			Operator:   GetOperator(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			Resource:   resource,
			ResourceID: resourceID,
			Status:     c.Writer.Status(),
			ClientIP:   c.ClientIP(),
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	default:
		return true
	}
}

// auditResource takes the first segment after /api from the matched route,
// e.g. /api/products/:id/duplicate gives "products" and the id param
func auditResource(c *gin.Context) (string, string) {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}

	segments := strings.Split(strings.Trim(route, "/"), "/")
	if len(segments) > 0 && segments[0] == "api" {
		segments = segments[1:]
	}

	resource := ""
	if len(segments) > 0 {
		resource = segments[0]
	}
	return resource, c.Param("id")
}
