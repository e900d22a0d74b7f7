package entity

import "time"

// LeaveStatus is the closed state set for a leave request. pending is the
// only mutable state; approved and rejected are terminal.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s LeaveStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transition.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveApproved || s == LeaveRejected
}

// LeaveRequest is owned by the submitting employee and mutated exactly once
// by the assigned reviewer. EmployeeName and ReviewedByName are snapshot
// fields, frozen at write time; later directory renames do not propagate.
type LeaveRequest struct {
	ID             string
	EmployeeID     string
	EmployeeName   string
	StartDate      time.Time
	EndDate        time.Time
	Reason         string
	Status         LeaveStatus
	ReviewedByID   *string // pre-assigned from the employee's manager at submission
	ReviewedByName *string
	ReviewNotes    *string
	RequestedAt    time.Time
	ReviewedAt     *time.Time // nil until reviewed
}

// TotalDays returns the inclusive number of calendar days covered.
func (lr *LeaveRequest) TotalDays() int {
	start := lr.StartDate.Truncate(24 * time.Hour)
	end := lr.EndDate.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}
