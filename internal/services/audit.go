package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ngenohkevin/zid-admin/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
	auditWriteTimeout = 5 * time.Second
)

// AuditStore persists audit entries; implemented by database.AuditQueries
type AuditStore interface {
	InsertAuditEntry(ctx context.Context, entry *models.AuditEntry) error
	ListAuditEntries(ctx context.Context, params models.AuditListParams) ([]models.AuditEntry, error)
}

// AuditServiceInterface is what the audit middleware and handler depend on
type AuditServiceInterface interface {
	Record(entry models.AuditEntry)
	List(ctx context.Context, params models.AuditListParams) ([]models.AuditEntry, error)
}

// AuditService writes entries from a single background worker. Record never
// blocks the request path: when the buffer is full the entry is dropped.
type AuditService struct {
	store   AuditStore
	logger  *slog.Logger
	entries chan models.AuditEntry
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewAuditService(store AuditStore, bufferSize int, logger *slog.Logger) *AuditService {
	if logger == nil {
		logger = slog.Default()
	}
	if bufferSize <= 0 {
		bufferSize = 256
	}
	s := &AuditService{
		store:   store,
		logger:  logger,
		entries: make(chan models.AuditEntry, bufferSize),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

func (s *AuditService) run() {
	defer s.wg.Done()
	for entry := range s.entries {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		if err := s.store.InsertAuditEntry(ctx, &entry); err != nil {
			s.logger.Error("Failed to write audit entry",
				"error", err,
				"method", entry.Method,
				"path", entry.Path,
			)
		}
		cancel()
	}
}

func (s *AuditService) Record(entry models.AuditEntry) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}

	select {
	case s.entries <- entry:
	default:
		s.logger.Warn("Audit buffer full, dropping entry", "method", entry.Method, "path", entry.Path)
	}
}

func (s *AuditService) List(ctx context.Context, params models.AuditListParams) ([]models.AuditEntry, error) {
	if params.Limit <= 0 {
		params.Limit = defaultAuditLimit
	}
	if params.Limit > maxAuditLimit {
		params.Limit = maxAuditLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	entries, err := s.store.ListAuditEntries(ctx, params)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.AuditEntry{}
	}
	return entries, nil
}

// Close stops accepting entries and waits for buffered ones to be written
func (s *AuditService) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.entries)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
