package dto

import "github.com/soprahr/leavedesk-api/internal/domain/entity"

// NewUserResponse maps a directory user to its read view.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		Department:   u.Department,
		ManagerID:    u.ManagerID,
		LeaveBalance: u.LeaveBalance,
		TotalLeaves:  u.TotalLeaves,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// NewLeaveResponse maps a leave request to its read view, without the
// enrichment fields.
func NewLeaveResponse(lr *entity.LeaveRequest) *LeaveResponse {
	if lr == nil {
		return nil
	}
	return &LeaveResponse{
		ID:             lr.ID,
		EmployeeID:     lr.EmployeeID,
		EmployeeName:   lr.EmployeeName,
		StartDate:      lr.StartDate,
		EndDate:        lr.EndDate,
		TotalDays:      lr.TotalDays(),
		Reason:         lr.Reason,
		Status:         string(lr.Status),
		ReviewedByID:   lr.ReviewedByID,
		ReviewedByName: lr.ReviewedByName,
		ReviewNotes:    lr.ReviewNotes,
		RequestedAt:    lr.RequestedAt,
		ReviewedAt:     lr.ReviewedAt,
	}
}

// NewAttachmentResponse maps an attachment to its read view.
func NewAttachmentResponse(a *entity.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:         a.ID,
		FileURL:    a.FileURL,
		UploadedAt: a.UploadedAt,
	}
}
