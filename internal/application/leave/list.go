package leave

import (
	"context"

	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
)

// ListScoped returns the requests the caller's role entitles them to see,
// newest first, enriched with employee, reviewer and attachments.
//
//   - manager: requests of direct reports (one hop down).
//   - head_of_departement: requests of employees whose manager reports to
//     the head (two hops down) — never requests from the head's own direct
//     reports.
//
// Employees get their own requests through ListMine; the route gate keeps
// them (and any other role) off this path.
func (uc *UseCase) ListScoped(ctx context.Context, callerID string, role entity.Role) ([]dto.LeaveResponse, error) {
	var managerIDs []string
	switch role {
	case entity.RoleManager:
		managerIDs = []string{callerID}
	case entity.RoleHeadOfDepartement:
		reports, err := uc.users.ListByManager(ctx, callerID)
		if err != nil {
			return nil, err
		}
		for _, r := range reports {
			if r.Role == entity.RoleManager {
				managerIDs = append(managerIDs, r.ID)
			}
		}
		if len(managerIDs) == 0 {
			return []dto.LeaveResponse{}, nil
		}
	default:
		return nil, domain.ErrForbidden
	}

	requests, err := uc.leaves.ListByManagers(ctx, managerIDs)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, requests)
}

// ListMine returns the caller's own requests, newest first, with attachments.
func (uc *UseCase) ListMine(ctx context.Context, employeeID string) ([]dto.LeaveResponse, error) {
	requests, err := uc.leaves.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, requests)
}

// enrich joins the employee record, the reviewer record and the attachments
// onto each request.
func (uc *UseCase) enrich(ctx context.Context, requests []*entity.LeaveRequest) ([]dto.LeaveResponse, error) {
	if len(requests) == 0 {
		return []dto.LeaveResponse{}, nil
	}

	idSet := make(map[string]bool)
	requestIDs := make([]string, 0, len(requests))
	for _, lr := range requests {
		requestIDs = append(requestIDs, lr.ID)
		idSet[lr.EmployeeID] = true
		if lr.ReviewedByID != nil {
			idSet[*lr.ReviewedByID] = true
		}
	}
	userIDs := make([]string, 0, len(idSet))
	for id := range idSet {
		userIDs = append(userIDs, id)
	}

	users, err := uc.users.GetManyByID(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[string]*entity.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	attachments, err := uc.attachments.ListByLeaveRequests(ctx, requestIDs)
	if err != nil {
		return nil, err
	}
	attsByRequest := make(map[string][]dto.AttachmentResponse)
	for _, a := range attachments {
		attsByRequest[a.LeaveRequestID] = append(attsByRequest[a.LeaveRequestID], dto.NewAttachmentResponse(a))
	}

	out := make([]dto.LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		resp := dto.NewLeaveResponse(lr)
		resp.Employee = dto.NewUserResponse(usersByID[lr.EmployeeID])
		if lr.ReviewedByID != nil {
			resp.Reviewer = dto.NewUserResponse(usersByID[*lr.ReviewedByID])
		}
		resp.Attachments = attsByRequest[lr.ID]
		out = append(out, *resp)
	}
	return out, nil
}
