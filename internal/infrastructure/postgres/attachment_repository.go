package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	"github.com/soprahr/leavedesk-api/internal/domain/repository"
)

var _ repository.AttachmentRepository = (*AttachmentRepo)(nil)

// AttachmentRepo implements the AttachmentRepository port over PostgreSQL.
type AttachmentRepo struct {
	db querier
}

// NewAttachmentRepository builds the persistence adapter for attachments.
func NewAttachmentRepository(db querier) *AttachmentRepo {
	return &AttachmentRepo{db: db}
}

// Create persists an attachment record.
func (r *AttachmentRepo) Create(ctx context.Context, att *entity.Attachment) error {
	query := `
		INSERT INTO attachments (id, leave_request_id, file_url, uploaded_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, att.ID, att.LeaveRequestID, att.FileURL, att.UploadedAt)
	if err != nil {
		return fmt.Errorf("insert attachment: %w", err)
	}
	return nil
}

// ListByLeaveRequest returns the attachments of one request, oldest first.
func (r *AttachmentRepo) ListByLeaveRequest(ctx context.Context, leaveRequestID string) ([]*entity.Attachment, error) {
	query := `
		SELECT id, leave_request_id, file_url, uploaded_at
		FROM attachments WHERE leave_request_id = $1 ORDER BY uploaded_at`
	rows, err := r.db.Query(ctx, query, leaveRequestID)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListByLeaveRequests returns the attachments of a batch of requests in one query.
func (r *AttachmentRepo) ListByLeaveRequests(ctx context.Context, leaveRequestIDs []string) ([]*entity.Attachment, error) {
	if len(leaveRequestIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, leave_request_id, file_url, uploaded_at
		FROM attachments WHERE leave_request_id = ANY($1) ORDER BY uploaded_at`
	rows, err := r.db.Query(ctx, query, leaveRequestIDs)
	if err != nil {
		return nil, fmt.Errorf("list attachments batch: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *AttachmentRepo) scanAll(rows pgx.Rows) ([]*entity.Attachment, error) {
	var list []*entity.Attachment
	for rows.Next() {
		var a entity.Attachment
		if err := rows.Scan(&a.ID, &a.LeaveRequestID, &a.FileURL, &a.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
