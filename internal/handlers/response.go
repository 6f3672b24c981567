package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/zid"
)

// Classified messages for remote failures
const (
	MsgAuthenticationFailed = "Authentication failed. Please check your access token."
	MsgAccessDenied         = "Access denied. Insufficient permissions."
	MsgNotFound             = "Resource not found."
	MsgRateLimited          = "Rate limit exceeded. Please try again later."
)

// Envelope is the response shape of every gateway route
type Envelope = models.APIResponse[interface{}]

// statusMessages is checked in order; the first match wins
var statusMessages = []struct {
	code    int
	message string
}{
	{http.StatusUnauthorized, MsgAuthenticationFailed},
	{http.StatusForbidden, MsgAccessDenied},
	{http.StatusNotFound, MsgNotFound},
	{http.StatusTooManyRequests, MsgRateLimited},
}

// ClassifyError maps a remote failure to the message shown to the operator.
// Errors carrying a remote status are classified on that status; anything else
// falls back to searching its text for a status code.
func ClassifyError(err error) string {
	if err == nil {
		return models.DefaultErrorMessage
	}

	if code, ok := zid.StatusCode(err); ok {
		for _, sm := range statusMessages {
			if code == sm.code {
				return sm.message
			}
		}
		return messageOrDefault(err)
	}

	msg := err.Error()
	for _, sm := range statusMessages {
		if strings.Contains(msg, fmt.Sprint(sm.code)) {
			return sm.message
		}
	}
	return messageOrDefault(err)
}

func messageOrDefault(err error) string {
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return models.DefaultErrorMessage
}

// HandleAPIError logs a remote failure and builds its failed envelope
func HandleAPIError(err error) Envelope {
	slog.Error("API Error", "error", err)
	return models.NewFailure[interface{}](ClassifyError(err))
}

func respondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, models.NewSuccess[interface{}](data, message))
}

// respondValidationError reports client input problems. Nothing has been sent
// to the remote API at this point.
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.NewFailure[interface{}](message))
}

// respondAPIError reports every other failure as 500 regardless of the remote
// status; the classification only shapes the message.
func respondAPIError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, HandleAPIError(err))
}
