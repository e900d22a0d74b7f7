package leave

import (
	"context"

	"github.com/soprahr/leavedesk-api/internal/domain"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
)

// SummaryPDF renders the printable summary of a leave request.
func (uc *UseCase) SummaryPDF(ctx context.Context, requestID string) ([]byte, error) {
	lr, err := uc.leaves.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if lr == nil {
		return nil, domain.ErrNotFound
	}

	employee, err := uc.users.GetByID(ctx, lr.EmployeeID)
	if err != nil {
		return nil, err
	}
	var reviewer *entity.User
	if lr.ReviewedByID != nil {
		reviewer, err = uc.users.GetByID(ctx, *lr.ReviewedByID)
		if err != nil {
			return nil, err
		}
	}

	attachments, err := uc.attachments.ListByLeaveRequest(ctx, lr.ID)
	if err != nil {
		return nil, err
	}

	return uc.pdf.GenerateLeaveSummaryPDF(ctx, lr, employee, reviewer, attachments)
}
