package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ngenohkevin/zid-admin/internal/zid"
	"github.com/ngenohkevin/zid-admin/internal/zid/zidtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recordedBulk struct {
	operation          string
	successful, failed int
}

type fakeBulkRecorder struct {
	mu    sync.Mutex
	calls []recordedBulk
}

func (f *fakeBulkRecorder) RecordBulkItems(operation string, successful, failed int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedBulk{operation, successful, failed})
}

func TestProductService_BulkDelete(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()

	t.Run("one failure does not stop the others", func(t *testing.T) {
		api := new(zidtest.MockAPI)
		api.On("DeleteProduct", mock.Anything, "p1").Return(zidtest.Raw(`{}`), nil)
		api.On("DeleteProduct", mock.Anything, "p2").Return(nil, &zid.APIError{StatusCode: 404, Status: "Not Found"})
		api.On("DeleteProduct", mock.Anything, "p3").Return(zidtest.Raw(`{}`), nil)
		recorder := &fakeBulkRecorder{}

		svc := NewProductService(api, 0, recorder, nil)
		result := svc.BulkDelete(ctx, []string{"p1", "p2", "p3"})

		assert.Equal(t, 2, result.Successful)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Results, 3)
		assert.Equal(t, "p1", result.Results[0].ID)
		assert.True(t, result.Results[0].Success)
		assert.Equal(t, "p2", result.Results[1].ID)
		assert.False(t, result.Results[1].Success)
		assert.Equal(t, "API Error: 404 Not Found", result.Results[1].Error)
		assert.Equal(t, "p3", result.Results[2].ID)
		assert.True(t, result.Results[2].Success)
		assert.Equal(t, "2 products deleted successfully, 1 failed", result.Message())

		assert.Equal(t, []recordedBulk{{"delete_products", 2, 1}}, recorder.calls)
		api.AssertNumberOfCalls(t, "DeleteProduct", 3)
	})

	t.Run("all succeed with bounded concurrency", func(t *testing.T) {
		api := new(zidtest.MockAPI)
		api.On("DeleteProduct", mock.Anything, mock.AnythingOfType("string")).Return(zidtest.Raw(`{}`), nil)

		ids := []string{"a", "b", "c", "d", "e"}
		svc := NewProductService(api, 2, nil, nil)
		result := svc.BulkDelete(ctx, ids)

		assert.Equal(t, 5, result.Successful)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, "5 products deleted successfully", result.Message())
		for i, id := range ids {
			assert.Equal(t, id, result.Results[i].ID)
		}
	})

	t.Run("all fail", func(t *testing.T) {
		api := new(zidtest.MockAPI)
		api.On("DeleteProduct", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		svc := NewProductService(api, 0, nil, nil)
		result := svc.BulkDelete(ctx, []string{"x", "y"})

		assert.Equal(t, 0, result.Successful)
		assert.Equal(t, 2, result.Failed)
		assert.Equal(t, "0 products deleted successfully, 2 failed", result.Message())
	})
}

func TestProductService_Duplicate(t *testing.T) {
	ctx := context.Background()
	fixed := time.UnixMilli(1700000000000)

	t.Run("copies with new name and sku", func(t *testing.T) {
		api := new(zidtest.MockAPI)
		api.On("GetProduct", mock.Anything, "42").
			Return(zidtest.Raw(`{"id":"42","name":"Mug","sku":"MUG-1","price":15,"category_id":"c1"}`), nil)

		var created map[string]interface{}
		api.On("CreateProduct", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(map[string]interface{})
			}).
			Return(zidtest.Raw(`{"id":"43"}`), nil)

		svc := NewProductService(api, 0, nil, nil)
		svc.now = func() time.Time { return fixed }

		out, err := svc.Duplicate(ctx, "42")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"43"}`, string(out))

		assert.Equal(t, "Mug (Copy)", created["name"])
		assert.Equal(t, "MUG-1-COPY-1700000000000", created["sku"])
		assert.EqualValues(t, 15, created["price"])
		assert.Equal(t, "c1", created["category_id"])
		_, hasID := created["id"]
		assert.False(t, hasID)
	})

	t.Run("fetch failure is returned without creating", func(t *testing.T) {
		api := new(zidtest.MockAPI)
		api.On("GetProduct", mock.Anything, "missing").Return(nil, &zid.APIError{StatusCode: 404, Status: "Not Found"})

		svc := NewProductService(api, 0, nil, nil)
		_, err := svc.Duplicate(ctx, "missing")

		var apiErr *zid.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
		api.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("non-object payload", func(t *testing.T) {
		api := new(zidtest.MockAPI)
		api.On("GetProduct", mock.Anything, "1").Return(zidtest.Raw(`[1,2]`), nil)

		svc := NewProductService(api, 0, nil, nil)
		_, err := svc.Duplicate(ctx, "1")
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})
}
