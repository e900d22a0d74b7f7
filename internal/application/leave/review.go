package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	"github.com/soprahr/leavedesk-api/internal/domain/repository"
)

// Review decides a pending leave request. reviewerID comes from the
// authenticated session; the request body is never trusted for identity.
// A reviewer may only act on requests whose submitter reports to them
// directly. pending is the only reviewable state: approved and rejected are
// terminal and a repeat review mutates nothing.
//
// Approval deducts the inclusive day count from the employee's leave balance;
// the status transition and the deduction commit in one transaction.
func (uc *UseCase) Review(ctx context.Context, reviewerID, requestID string, in dto.ReviewLeaveRequest) (*dto.LeaveResponse, error) {
	status := entity.LeaveStatus(in.Status)
	if status != entity.LeaveApproved && status != entity.LeaveRejected {
		return nil, domain.ErrInvalidStatus
	}

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
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if !employee.ReportsTo(reviewerID) {
		return nil, domain.ErrForbidden
	}
	if lr.Status.Terminal() {
		return nil, domain.ErrAlreadyReviewed
	}

	reviewer, err := uc.users.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	if reviewer == nil {
		return nil, domain.ErrUserNotFound
	}

	days := decimal.NewFromInt(int64(lr.TotalDays()))
	if status == entity.LeaveApproved && employee.LeaveBalance.LessThan(days) {
		return nil, domain.ErrInsufficientLeave
	}

	now := time.Now()
	lr.Status = status
	lr.ReviewedByID = &reviewer.ID
	lr.ReviewedByName = &reviewer.Name // snapshot at review time
	lr.ReviewedAt = &now
	if in.ReviewNotes != "" {
		notes := in.ReviewNotes
		lr.ReviewNotes = &notes
	}

	err = uc.tx.Run(ctx, func(leaves repository.LeaveRequestRepository, users repository.UserRepository) error {
		if err := leaves.Update(ctx, lr); err != nil {
			return err
		}
		if status == entity.LeaveApproved {
			employee.LeaveBalance = employee.LeaveBalance.Sub(days)
			employee.UpdatedAt = now
			return users.Update(ctx, employee)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := entity.AuditReviewRejected
	if status == entity.LeaveApproved {
		action = entity.AuditReviewApproved
	}
	uc.recorder.Record(ctx, reviewer.ID, action, lr.ID, in.ReviewNotes)
	uc.recorder.Notify(ctx, lr.EmployeeID,
		fmt.Sprintf("Your leave request (%s to %s) was %s by %s",
			lr.StartDate.Format(dateLayout), lr.EndDate.Format(dateLayout), status, reviewer.Name))

	return dto.NewLeaveResponse(lr), nil
}
