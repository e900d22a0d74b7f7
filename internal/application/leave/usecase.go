// Package leave implements the leave request workflow: submission with
// reviewer auto-assignment, the one-way review transition, role-scoped
// listing and attachment handling.
package leave

import (
	"github.com/soprahr/leavedesk-api/internal/application/audit"
	"github.com/soprahr/leavedesk-api/internal/domain/repository"
)

// dateLayout is the wire format for startDate/endDate.
const dateLayout = "2006-01-02"

// UseCase bundles the leave workflow operations.
type UseCase struct {
	leaves      repository.LeaveRequestRepository
	users       repository.UserRepository
	attachments repository.AttachmentRepository
	tx          TxRunner
	recorder    *audit.Recorder
	files       FileStore
	pdf         SummaryPDFGenerator
}

// NewUseCase builds the workflow use case.
func NewUseCase(
	leaves repository.LeaveRequestRepository,
	users repository.UserRepository,
	attachments repository.AttachmentRepository,
	tx TxRunner,
	recorder *audit.Recorder,
	files FileStore,
	pdf SummaryPDFGenerator,
) *UseCase {
	return &UseCase{
		leaves:      leaves,
		users:       users,
		attachments: attachments,
		tx:          tx,
		recorder:    recorder,
		files:       files,
		pdf:         pdf,
	}
}
