package leave

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
)

// UploadAttachment stores a supporting file for an existing leave request.
// The file goes to the FileStore; only the resulting URL is persisted.
func (uc *UseCase) UploadAttachment(ctx context.Context, actorID, leaveRequestID, filename string, file io.Reader) (*dto.UploadAttachmentResponse, error) {
	lr, err := uc.leaves.GetByID(ctx, leaveRequestID)
	if err != nil {
		return nil, err
	}
	if lr == nil {
		return nil, domain.ErrNotFound
	}

	fileURL, err := uc.files.Save(ctx, leaveRequestID, filename, file)
	if err != nil {
		return nil, err
	}

	att := &entity.Attachment{
		ID:             uuid.New().String(),
		LeaveRequestID: leaveRequestID,
		FileURL:        fileURL,
		UploadedAt:     time.Now(),
	}
	if err := uc.attachments.Create(ctx, att); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, actorID, entity.AuditUploadAttachment, leaveRequestID, fileURL)
	uc.recorder.Notify(ctx, lr.EmployeeID, "An attachment was added to your leave request")

	return &dto.UploadAttachmentResponse{
		Message:    "Attachment uploaded successfully",
		Attachment: dto.NewAttachmentResponse(att),
	}, nil
}
