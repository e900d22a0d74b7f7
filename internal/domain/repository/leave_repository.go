package repository

import (
	"context"

	"github.com/soprahr/leavedesk-api/internal/domain/entity"
)

// LeaveRequestRepository is the persistence port for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, lr *entity.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*entity.LeaveRequest, error)
	Update(ctx context.Context, lr *entity.LeaveRequest) error
	// ListByEmployee returns the employee's own requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.LeaveRequest, error)
	// ListByManagers returns requests whose submitting employee reports to
	// one of managerIDs, newest first.
	ListByManagers(ctx context.Context, managerIDs []string) ([]*entity.LeaveRequest, error)
}
