package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserResponse is the directory view of a user. The password hash never
// leaves the domain.
type UserResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         string          `json:"role"`
	Department   string          `json:"department,omitempty"`
	ManagerID    *string         `json:"managerId,omitempty"`
	LeaveBalance decimal.Decimal `json:"leaveBalance"`
	TotalLeaves  decimal.Decimal `json:"totalLeaves"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CreateUserRequest onboards a user (admin only).
type CreateUserRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
	Department   string  `json:"department"`
	ManagerID    *string `json:"managerId"`
	LeaveBalance string  `json:"leaveBalance"` // decimal, e.g. "25" or "22.5"
	TotalLeaves  string  `json:"totalLeaves"`
}

// UpdateUserRequest reassigns role, manager or department (admin only).
// Nil fields are left untouched.
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	ManagerID  *string `json:"managerId"`
}
