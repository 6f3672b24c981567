package models

import "time"

// AuditEntry records one mutating request that passed through the gateway
type AuditEntry struct {
	ID         int64     `json:"id"`
	RequestID  string    `json:"request_id"`
	Operator   string    `json:"operator,omitempty"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	Status     int       `json:"status"`
	ClientIP   string    `json:"client_ip,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuditListParams struct {
	Resource string
	Limit    int
	Offset   int
}
