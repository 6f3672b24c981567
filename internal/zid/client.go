package zid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production root of the Zid commerce API
const DefaultBaseURL = "https://api.zid.sa"

// Config holds the credentials that scope every remote call to one store
type Config struct {
	StoreID     string
	AccessToken string
	BaseURL     string
}

// Recorder observes completed remote calls
type Recorder interface {
	ObserveRemoteCall(operation string, statusCode int, duration time.Duration)
}

// Client performs one authenticated HTTP call per logical operation against
// the commerce API. Each call is attempted exactly once.
type Client struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
	recorder   Recorder
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the transport used for remote calls
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimit throttles outbound calls to rps requests per second. A
// non-positive rps leaves calls unthrottled.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the given store
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		config:     cfg,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the endpoint root calls are issued against
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string) (json.RawMessage, error) {
	return c.request(ctx, op, http.MethodGet, endpoint, nil, "")
}

func (c *Client) sendJSON(ctx context.Context, op, method, endpoint string, payload interface{}) (json.RawMessage, error) {
	if payload == nil {
		return c.request(ctx, op, method, endpoint, nil, "")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", op, err)
	}
	return c.request(ctx, op, method, endpoint, bytes.NewReader(data), "application/json")
}

func (c *Client) sendMultipart(ctx context.Context, op, endpoint, field, filename string, file io.Reader) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	return c.request(ctx, op, http.MethodPost, endpoint, &buf, writer.FormDataContentType())
}

// request issues the call. contentType overrides the JSON default; multipart
// uploads pass the writer's content type so the boundary survives.
func (c *Client) request(ctx context.Context, op, method, endpoint string, body io.Reader, contentType string) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: rate limiter: %w", op, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", op, err)
	}

	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("X-Store-ID", c.config.StoreID)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.observe(op, 0, elapsed)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	c.observe(op, resp.StatusCode, elapsed)
	c.logger.Debug("Remote call completed",
		slog.String("operation", op),
		slog.String("method", method),
		slog.String("endpoint", redactQuery(endpoint)),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", elapsed),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, newAPIError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", op, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s: invalid JSON in response", op)
	}
	return json.RawMessage(data), nil
}

func (c *Client) observe(op string, status int, d time.Duration) {
	if c.recorder != nil {
		c.recorder.ObserveRemoteCall(op, status, d)
	}
}

func redactQuery(endpoint string) string {
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		return endpoint[:i]
	}
	return endpoint
}

func resourcePath(collection, id string, sub ...string) string {
	parts := append([]string{collection, url.PathEscape(id)}, sub...)
	return "/" + strings.Join(parts, "/")
}
