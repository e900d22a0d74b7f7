package dto

import "time"

// SubmitLeaveRequest files a new leave request. All fields are required;
// dates use the 2006-01-02 layout.
type SubmitLeaveRequest struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
}

// Complete reports whether every required field is present.
func (r SubmitLeaveRequest) Complete() bool {
	return r.EmployeeID != "" && r.EmployeeName != "" &&
		r.StartDate != "" && r.EndDate != "" && r.Reason != ""
}

// ReviewLeaveRequest decides a pending request. The reviewer identity is
// never taken from the body; it comes from the authenticated session.
type ReviewLeaveRequest struct {
	Status      string `json:"status"` // "approved" | "rejected"
	ReviewNotes string `json:"reviewNotes,omitempty"`
}

// AttachmentResponse is the read view of an attachment.
type AttachmentResponse struct {
	ID         string    `json:"id"`
	FileURL    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// LeaveResponse is the read view of a leave request. Employee and Reviewer
// are only populated on the enriched (scoped) listing.
type LeaveResponse struct {
	ID             string               `json:"id"`
	EmployeeID     string               `json:"employeeId"`
	EmployeeName   string               `json:"employeeName"`
	StartDate      time.Time            `json:"startDate"`
	EndDate        time.Time            `json:"endDate"`
	TotalDays      int                  `json:"totalDays"`
	Reason         string               `json:"reason"`
	Status         string               `json:"status"`
	ReviewedByID   *string              `json:"reviewedById,omitempty"`
	ReviewedByName *string              `json:"reviewedByName,omitempty"`
	ReviewNotes    *string              `json:"reviewNotes,omitempty"`
	RequestedAt    time.Time            `json:"requestedAt"`
	ReviewedAt     *time.Time           `json:"reviewedAt,omitempty"`
	Employee       *UserResponse        `json:"employee,omitempty"`
	Reviewer       *UserResponse        `json:"reviewer,omitempty"`
	Attachments    []AttachmentResponse `json:"attachments,omitempty"`
}

// UploadAttachmentResponse confirms an upload.
type UploadAttachmentResponse struct {
	Message    string             `json:"message"`
	Attachment AttachmentResponse `json:"attachment"`
}
