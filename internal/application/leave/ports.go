package leave

import (
	"context"
	"io"

	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	"github.com/soprahr/leavedesk-api/internal/domain/repository"
)

// TxRunner executes fn inside one database transaction with the leave and
// user repositories bound to it. The review path uses it to keep the status
// transition and the balance deduction atomic.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		leaves repository.LeaveRequestRepository,
		users repository.UserRepository,
	) error) error
}

// FileStore persists an attachment file out-of-band and returns the URL
// under which it is served. Only the URL is stored in the database.
type FileStore interface {
	Save(ctx context.Context, leaveRequestID, filename string, r io.Reader) (string, error)
}

// SummaryPDFGenerator renders the printable summary of a leave request.
type SummaryPDFGenerator interface {
	GenerateLeaveSummaryPDF(ctx context.Context, lr *entity.LeaveRequest,
		employee, reviewer *entity.User, attachments []*entity.Attachment) ([]byte, error)
}
