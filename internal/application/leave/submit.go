package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
)

// Submit files a new leave request. The reviewer is auto-assigned from the
// employee's manager at submission time, not at review time.
//
// Validation happens before any write: all fields present, startDate not
// after endDate, employee exists, employee has a manager, manager is not the
// employee themselves. The audit entry and the two notifications run after
// the insert as best-effort hooks.
func (uc *UseCase) Submit(ctx context.Context, in dto.SubmitLeaveRequest) (*dto.LeaveResponse, error) {
	if !in.Complete() {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if start.After(end) {
		return nil, domain.ErrInvalidDateRange
	}

	employee, err := uc.users.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrUserNotFound
	}
	if employee.ManagerID == nil || *employee.ManagerID == "" {
		return nil, domain.ErrNoManagerAssigned
	}
	if *employee.ManagerID == employee.ID {
		return nil, domain.ErrSelfReview
	}
	manager, err := uc.users.GetByID(ctx, *employee.ManagerID)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.ErrNoManagerAssigned
	}

	lr := &entity.LeaveRequest{
		ID:             uuid.New().String(),
		EmployeeID:     employee.ID,
		EmployeeName:   in.EmployeeName, // snapshot at creation time
		StartDate:      start,
		EndDate:        end,
		Reason:         in.Reason,
		Status:         entity.LeavePending,
		ReviewedByID:   &manager.ID,
		ReviewedByName: &manager.Name,
		RequestedAt:    time.Now(),
	}
	if err := uc.leaves.Create(ctx, lr); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, employee.ID, entity.AuditSubmitLeave, lr.ID,
		fmt.Sprintf("%s to %s: %s", in.StartDate, in.EndDate, in.Reason))
	uc.recorder.Notify(ctx, manager.ID,
		fmt.Sprintf("New leave request from %s (%s to %s)", lr.EmployeeName, in.StartDate, in.EndDate))
	uc.recorder.Notify(ctx, employee.ID,
		fmt.Sprintf("Your leave request (%s to %s) was submitted and sent to %s", in.StartDate, in.EndDate, manager.Name))

	return dto.NewLeaveResponse(lr), nil
}
