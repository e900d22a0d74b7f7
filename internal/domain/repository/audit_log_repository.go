package repository

import (
	"context"

	"github.com/soprahr/leavedesk-api/internal/domain/entity"
)

// AuditLogRepository is the persistence port for the append-only audit trail.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entity.AuditLogEntry) error
	// ListRecent returns at most limit entries, newest first, with the actor
	// identity joined in.
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error)
}
