package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/zid"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidProduct = errors.New("product payload is not a JSON object")

// ProductServiceInterface defines the product operations that need more than
// a single remote call
type ProductServiceInterface interface {
	BulkDelete(ctx context.Context, productIDs []string) models.BulkDeleteResult
	Duplicate(ctx context.Context, productID string) (json.RawMessage, error)
}

// BulkRecorder observes the outcome of bulk operations
type BulkRecorder interface {
	RecordBulkItems(operation string, successful, failed int)
}

// ProductService composes product calls against the commerce API
type ProductService struct {
	products    zid.ProductAPI
	concurrency int
	recorder    BulkRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// NewProductService creates a product service. concurrency caps the number of
// unit calls a bulk operation runs at once; zero or less means no cap.
func NewProductService(products zid.ProductAPI, concurrency int, recorder BulkRecorder, logger *slog.Logger) *ProductService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductService{
		products:    products,
		concurrency: concurrency,
		recorder:    recorder,
		logger:      logger,
		now:         time.Now,
	}
}

// BulkDelete deletes every product independently. A failed unit never stops
// or rolls back the others; the result is assembled once all have settled and
// lists outcomes in request order.
func (s *ProductService) BulkDelete(ctx context.Context, productIDs []string) models.BulkDeleteResult {
	results := make([]models.BulkItemResult, len(productIDs))

	var g errgroup.Group
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}

	for i, id := range productIDs {
		g.Go(func() error {
			results[i] = models.BulkItemResult{ID: id, Success: true}
			if _, err := s.products.DeleteProduct(ctx, id); err != nil {
				results[i] = models.BulkItemResult{ID: id, Success: false, Error: err.Error()}
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := models.BulkDeleteResult{Results: results}
	for _, r := range results {
		if r.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}

	if s.recorder != nil {
		s.recorder.RecordBulkItems("delete_products", summary.Successful, summary.Failed)
	}
	if summary.Failed > 0 {
		s.logger.Warn("Bulk delete finished with failures",
			"successful", summary.Successful,
			"failed", summary.Failed,
		)
	}

	return summary
}

// Duplicate copies a product under a new name and SKU. Every other field is
// carried over unchanged; the id is dropped so the remote API assigns one.
func (s *ProductService) Duplicate(ctx context.Context, productID string) (json.RawMessage, error) {
	original, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	var product map[string]interface{}
	if err := json.Unmarshal(original, &product); err != nil || product == nil {
		return nil, ErrInvalidProduct
	}

	product["name"] = fmt.Sprintf("%s (Copy)", stringField(product, "name"))
	product["sku"] = fmt.Sprintf("%s-COPY-%d", stringField(product, "sku"), s.now().UnixMilli())
	delete(product, "id")

	return s.products.CreateProduct(ctx, product)
}

func stringField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
