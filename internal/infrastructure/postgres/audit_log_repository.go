package postgres

import (
	"context"
	"fmt"

	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	"github.com/soprahr/leavedesk-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implements the append-only AuditLogRepository port over
// PostgreSQL. No update or delete exists on this table.
type AuditLogRepo struct {
	db querier
}

// NewAuditLogRepository builds the persistence adapter for the audit trail.
func NewAuditLogRepository(db querier) *AuditLogRepo {
	return &AuditLogRepo{db: db}
}

// Create appends one audit entry.
func (r *AuditLogRepo) Create(ctx context.Context, entry *entity.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (id, user_id, action, target_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.UserID, entry.Action, entry.TargetID, entry.Details, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListRecent returns at most limit entries, newest first, with the acting
// user's name and email joined in. A left join keeps entries whose actor has
// since left the directory.
func (r *AuditLogRepo) ListRecent(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	query := `
		SELECT a.id, a.user_id, a.action, a.target_id, a.details, a.created_at,
		       COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM audit_logs a
		LEFT JOIN users u ON u.id = a.user_id
		ORDER BY a.created_at DESC
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLogEntry
	for rows.Next() {
		var e entity.AuditLogEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Action, &e.TargetID, &e.Details, &e.CreatedAt,
			&e.ActorName, &e.ActorEmail,
		); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
