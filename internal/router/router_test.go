package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/handlers"
	"github.com/ngenohkevin/zid-admin/internal/middleware"
	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/services"
	"github.com/ngenohkevin/zid-admin/internal/telemetry"
	"github.com/ngenohkevin/zid-admin/internal/zid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore mimics the commerce API closely enough for the gateway routes
func fakeStore(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" || r.Header.Get("X-Store-ID") != "store-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"data":[{"id":"o1","status":"`+r.URL.Query().Get("status")+`"}],"pagination":{"current_page":1,"total_pages":1,"per_page":20,"total":1}}`)
	})
	mux.HandleFunc("GET /orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	})
	mux.HandleFunc("DELETE /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "bad" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, `{"deleted":true}`)
	})
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type memoryAudit struct {
	mu      sync.Mutex
	entries []models.AuditEntry
}

func (m *memoryAudit) Record(entry models.AuditEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
}

func (m *memoryAudit) List(ctx context.Context, params models.AuditListParams) ([]models.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AuditEntry{}, m.entries...), nil
}

func newGateway(t *testing.T, authService services.AuthServiceInterface, audit services.AuditServiceInterface) (*gin.Engine, *telemetry.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := fakeStore(t)
	metrics := telemetry.NewMetrics(prometheus.NewRegistry())
	client := zid.NewClient(zid.Config{
		StoreID:     "store-1",
		AccessToken: "token",
		BaseURL:     srv.URL,
	}, zid.WithRecorder(metrics))

	engine := New(Dependencies{
		API:            client,
		ProductService: services.NewProductService(client, 2, metrics, nil),
		AuthService:    authService,
		AuditService:   audit,
		Metrics:        metrics,
		HealthChecks:   map[string]handlers.HealthChecker{},
		Version:        "test",
	})
	return engine, metrics
}

func serve(engine *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGateway_EndToEnd(t *testing.T) {
	audit := &memoryAudit{}
	engine, _ := newGateway(t, nil, audit)

	t.Run("list orders relays filters and normalizes", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/orders?status=new", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":{"data":[{"id":"o1","status":"new"}],"pagination":{"current_page":1,"total_pages":1,"per_page":20,"total":1}}}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("remote 404 is a 500 with classified message", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/orders/o404", "", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"`+handlers.MsgNotFound+`"}`, w.Body.String())
	})

	t.Run("remote 429", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/products", "", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), handlers.MsgRateLimited)
	})

	t.Run("bulk delete is audited", func(t *testing.T) {
		w := serve(engine, http.MethodPost, "/api/products/bulk-delete", `{"product_ids":["a","bad","c"]}`, "")
		assert.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Data    models.BulkDeleteResult `json:"data"`
			Message string                  `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "2 products deleted successfully, 1 failed", env.Message)
		assert.Equal(t, "API Error: 500 Internal Server Error", env.Data.Results[1].Error)

		entries, _ := audit.List(context.Background(), models.AuditListParams{})
		require.Len(t, entries, 1)
		assert.Equal(t, "products", entries[0].Resource)
		assert.Equal(t, http.StatusOK, entries[0].Status)
	})

	t.Run("audit listing", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/audit", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/api/products/bulk-delete")
	})

	t.Run("unknown route and method keep the envelope", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/unknown", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"`+middleware.MsgRouteNotFound+`"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

		w = serve(engine, http.MethodPatch, "/api/orders/1", `{"status":"done"}`, "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"`+middleware.MsgMethodNotAllowed+`"}`, w.Body.String())
	})

	t.Run("health and metrics", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = serve(engine, http.MethodGet, "/metrics", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `zidadmin_remote_calls_total{operation="delete_product",status="200"} 2`)
		assert.Contains(t, w.Body.String(), `zidadmin_bulk_items_total{operation="delete_products",outcome="failure"} 1`)
	})
}

func TestGateway_WithOperatorAuth(t *testing.T) {
	hash, err := services.HashPassword("correct-horse")
	require.NoError(t, err)
	authService, err := services.NewAuthService("router-secret", time.Hour, []models.Operator{
		{Username: "admin", PasswordHash: hash, Role: models.RoleAdmin},
		{Username: "viewer", PasswordHash: hash, Role: models.RoleViewer},
	}, nil, nil)
	require.NoError(t, err)

	engine, _ := newGateway(t, authService, &memoryAudit{})

	login := func(username string) string {
		w := serve(engine, http.MethodPost, "/api/auth/login", `{"username":"`+username+`","password":"correct-horse"}`, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var env struct {
			Data models.LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		return env.Data.AccessToken
	}

	adminToken := login("admin")
	viewerToken := login("viewer")

	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/api/orders", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/orders", "", viewerToken).Code)
	assert.Equal(t, http.StatusForbidden, serve(engine, http.MethodDelete, "/api/products/a", "", viewerToken).Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodDelete, "/api/products/a", "", adminToken).Code)
	assert.Equal(t, http.StatusForbidden, serve(engine, http.MethodGet, "/api/audit", "", viewerToken).Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/audit", "", adminToken).Code)

	w := serve(engine, http.MethodGet, "/api/auth/me", "", viewerToken)
	assert.JSONEq(t, `{"success":true,"data":{"username":"viewer","role":"viewer"}}`, w.Body.String())

	// ping stays public
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/ping", "", "").Code)
}
