package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ngenohkevin/zid-admin/internal/models"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// AuditQueries reads and writes the audit_logs table
type AuditQueries struct {
	db DBTX
}

func NewAuditQueries(db DBTX) *AuditQueries {
	return &AuditQueries{db: db}
}

const insertAuditEntry = `
INSERT INTO audit_logs (request_id, operator, method, path, resource, resource_id, status, client_ip)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at`

func (q *AuditQueries) InsertAuditEntry(ctx context.Context, entry *models.AuditEntry) error {
	row := q.db.QueryRow(ctx, insertAuditEntry,
		entry.RequestID,
		entry.Operator,
		entry.Method,
		entry.Path,
		entry.Resource,
		entry.ResourceID,
		entry.Status,
		entry.ClientIP,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

const listAuditEntries = `
SELECT id, request_id, operator, method, path, resource, resource_id, status, client_ip, created_at
FROM audit_logs
WHERE ($1 = '' OR resource = $1)
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

func (q *AuditQueries) ListAuditEntries(ctx context.Context, params models.AuditListParams) ([]models.AuditEntry, error) {
	rows, err := q.db.Query(ctx, listAuditEntries, params.Resource, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuditEntry, error) {
		var e models.AuditEntry
		err := row.Scan(
			&e.ID,
			&e.RequestID,
			&e.Operator,
			&e.Method,
			&e.Path,
			&e.Resource,
			&e.ResourceID,
			&e.Status,
			&e.ClientIP,
			&e.CreatedAt,
		)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit entries: %w", err)
	}
	return entries, nil
}
