package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seenRequest struct {
	method, path, query, auth, contentType string
	body                                   []byte
}

func newGateway(t *testing.T, status int, body string) (*httptest.Server, *seenRequest) {
	t.Helper()
	seen := &seenRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.method = r.Method
		seen.path = r.URL.EscapedPath()
		seen.query = r.URL.RawQuery
		seen.auth = r.Header.Get("Authorization")
		seen.contentType = r.Header.Get("Content-Type")
		seen.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func TestClient_ListOrders(t *testing.T) {
	srv, seen := newGateway(t, http.StatusOK,
		`{"success":true,"data":{"data":[{"id":"o1"}],"pagination":{"current_page":2,"total_pages":2,"per_page":1,"total":2}}}`)

	page := 2
	client := NewClient(srv.URL+"/", WithToken("tok"))
	h := NewHook[models.PaginatedResponse[models.Order]]()

	env := h.Execute(context.Background(), client.ListOrders(models.OrderListParams{Page: &page}))

	require.True(t, env.Success, env.Error)
	assert.Equal(t, http.MethodGet, seen.method)
	assert.Equal(t, "/api/orders", seen.path)
	assert.Equal(t, "page=2", seen.query)
	assert.Equal(t, "Bearer tok", seen.auth)

	state := h.State()
	require.NotNil(t, state.Data)
	assert.Equal(t, 2, state.Data.Pagination.CurrentPage)
	require.Len(t, state.Data.Data, 1)
	assert.Equal(t, "o1", state.Data.Data[0].ID)
}

func TestClient_BulkDeleteProducts(t *testing.T) {
	srv, seen := newGateway(t, http.StatusOK,
		`{"success":true,"data":{"successful":1,"failed":1,"results":[{"id":"a","success":true},{"id":"b","success":false,"error":"API Error: 404 Not Found"}]},"message":"1 products deleted successfully, 1 failed"}`)

	client := NewClient(srv.URL)
	h := NewHook[models.BulkDeleteResult]()
	env := h.Execute(context.Background(), client.BulkDeleteProducts([]string{"a", "b"}))

	assert.Equal(t, http.MethodPost, seen.method)
	assert.Equal(t, "/api/products/bulk-delete", seen.path)
	assert.Equal(t, "application/json", seen.contentType)
	assert.Empty(t, seen.auth)

	var sent models.BulkDeleteRequest
	require.NoError(t, json.Unmarshal(seen.body, &sent))
	assert.Equal(t, models.IDList{"a", "b"}, sent.ProductIDs)

	assert.True(t, env.Success)
	assert.Equal(t, "1 products deleted successfully, 1 failed", env.Message)
	assert.Equal(t, 1, h.State().Data.Failed)
}

func TestClient_ValidationFailure(t *testing.T) {
	srv, _ := newGateway(t, http.StatusBadRequest, `{"success":false,"error":"subject is required"}`)

	client := NewClient(srv.URL)
	h := NewHook[json.RawMessage]()
	env := h.Execute(context.Background(), client.SendCustomerEmail("c1", "a@b.sa", "", "hi"))

	assert.False(t, env.Success)
	assert.Equal(t, "subject is required", h.State().Error)
}

func TestClient_EscapesIDs(t *testing.T) {
	srv, seen := newGateway(t, http.StatusOK, `{"success":true,"data":null}`)

	client := NewClient(srv.URL)
	h := NewHook[json.RawMessage]()
	h.Execute(context.Background(), client.DuplicateProduct("a/b"))

	assert.Equal(t, "/api/products/a%2Fb/duplicate", seen.path)
}

func TestClient_Unreachable(t *testing.T) {
	srv, _ := newGateway(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	h := NewHook[json.RawMessage]()
	env := h.Execute(context.Background(), NewClient(url).CustomerStats())

	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
	assert.Equal(t, env.Error, h.State().Error)
}
