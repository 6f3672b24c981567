package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/models"
)

func Logger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		logger := slog.Default()

		requestID, _ := param.Keys[requestIDKey].(string)

		logger.Info("HTTP Request",
			slog.String("method", param.Method),
			slog.String("path", param.Path),
			slog.Int("status", param.StatusCode),
			slog.Duration("latency", param.Latency),
			slog.String("client_ip", param.ClientIP),
			slog.String("request_id", requestID),
			slog.String("user_agent", param.Request.UserAgent()),
			slog.Int("body_size", param.BodySize),
		)

		return ""
	})
}

// Recovery turns a panic into a failed envelope so clients always get the
// usual response shape
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger := slog.Default()

		logger.Error("Panic recovered",
			slog.Any("error", recovered),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.String("request_id", GetRequestID(c)),
		)

		abortWithFailure(c, http.StatusInternalServerError, "Internal server error")
	})
}

const (
	MsgRouteNotFound    = "Route not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// NotFound answers unknown paths with a failed envelope
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		abortWithFailure(c, http.StatusNotFound, MsgRouteNotFound)
	}
}

// MethodNotAllowed answers known paths hit with an unregistered method
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		abortWithFailure(c, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	}
}

func abortWithFailure(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, models.NewFailure[interface{}](message))
}
