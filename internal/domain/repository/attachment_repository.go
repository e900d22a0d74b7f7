package repository

import (
	"context"

	"github.com/soprahr/leavedesk-api/internal/domain/entity"
)

// AttachmentRepository is the persistence port for leave request attachments.
type AttachmentRepository interface {
	Create(ctx context.Context, att *entity.Attachment) error
	ListByLeaveRequest(ctx context.Context, leaveRequestID string) ([]*entity.Attachment, error)
	// ListByLeaveRequests fetches attachments for a batch of requests in one
	// query (listing enrichment).
	ListByLeaveRequests(ctx context.Context, leaveRequestIDs []string) ([]*entity.Attachment, error)
}
