package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/zid"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, models.DefaultErrorMessage},
		{"remote 401", &zid.APIError{StatusCode: 401, Status: "Unauthorized"}, MsgAuthenticationFailed},
		{"remote 403", &zid.APIError{StatusCode: 403, Status: "Forbidden"}, MsgAccessDenied},
		{"remote 404", &zid.APIError{StatusCode: 404, Status: "Not Found"}, MsgNotFound},
		{"remote 429", &zid.APIError{StatusCode: 429, Status: "Too Many Requests"}, MsgRateLimited},
		{"wrapped remote 429", fmt.Errorf("list orders: %w", &zid.APIError{StatusCode: 429, Status: "Too Many Requests"}), MsgRateLimited},
		{"remote 500 keeps message", &zid.APIError{StatusCode: 500, Status: "Internal Server Error"}, "API Error: 500 Internal Server Error"},
		{"text 403", errors.New("API Error: 403 Forbidden"), MsgAccessDenied},
		{"text 401 wins over 403", errors.New("got 403 after 401"), MsgAuthenticationFailed},
		{"text 404 wins over 429", errors.New("429 then 404"), MsgNotFound},
		{"network failure", errors.New("dial tcp: connection refused"), "dial tcp: connection refused"},
		{"blank message", errors.New("  "), models.DefaultErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	env := HandleAPIError(&zid.APIError{StatusCode: 404, Status: "Not Found"})

	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Equal(t, MsgNotFound, env.Error)
	assert.True(t, env.Valid())
}

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   string
	}{
		{"all present", []Field{{"name", "Mug"}, {"price", 15.0}, {"category_id", "c1"}}, ""},
		{"first missing wins", []Field{{"name", nil}, {"price", nil}}, "name is required"},
		{"order respected", []Field{{"name", "Mug"}, {"price", nil}, {"category_id", ""}}, "price is required"},
		{"blank string", []Field{{"email", "   "}}, "email is required"},
		{"zero is present", []Field{{"price", 0.0}}, ""},
		{"false is present", []Field{{"active", false}}, ""},
		{"nil string pointer", []Field{{"search", (*string)(nil)}}, "search is required"},
		{"no fields", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateRequired(tt.fields...))
		})
	}
}

func TestRequiredFields(t *testing.T) {
	body := map[string]interface{}{"name": "Mug", "price": 15.0}
	fields := RequiredFields(body, "price", "name", "category_id")

	assert.Equal(t, []Field{
		{Name: "price", Value: 15.0},
		{Name: "name", Value: "Mug"},
		{Name: "category_id", Value: nil},
	}, fields)
}
