package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ngenohkevin/zid-admin/internal/config"
	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDatabase connects to TEST_DATABASE_URL; the audit_logs migration
// must already be applied
func setupTestDatabase(t *testing.T) *Database {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	ctx := context.Background()
	db, err := New(ctx, config.DatabaseConfig{URL: dsn})
	if err != nil {
		t.Skipf("Database not available: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func TestAuditQueries_InsertAndList(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()
	q := NewAuditQueries(db.Pool)

	resource := "test-" + time.Now().Format("150405.000000")
	entry := &models.AuditEntry{
		RequestID:  "req-1",
		Operator:   "alice",
		Method:     "DELETE",
		Path:       "/api/products/p1",
		Resource:   resource,
		ResourceID: "p1",
		Status:     200,
		ClientIP:   "127.0.0.1",
	}
	require.NoError(t, q.InsertAuditEntry(ctx, entry))
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	entries, err := q.ListAuditEntries(ctx, models.AuditListParams{Resource: resource, Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Operator)
	assert.Equal(t, "p1", entries[0].ResourceID)

	_, err = db.Pool.Exec(ctx, "DELETE FROM audit_logs WHERE resource = $1", resource)
	require.NoError(t, err)
}

func TestDatabase_New_InvalidDSN(t *testing.T) {
	_, err := New(context.Background(), config.DatabaseConfig{URL: "not a url ::"})
	assert.Error(t, err)
}

func TestRedisOptions(t *testing.T) {
	opts, err := redisOptions(config.RedisConfig{Host: "cache", Port: 6380, DB: 2})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)

	opts, err = redisOptions(config.RedisConfig{URL: "redis://:pw@redis.internal:6379/3"})
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 3, opts.DB)

	_, err = redisOptions(config.RedisConfig{URL: "http://wrong"})
	assert.Error(t, err)
}
