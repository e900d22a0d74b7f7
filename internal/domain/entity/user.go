package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the root directory aggregate. ManagerID is the single-parent
// reporting-chain pointer (employee -> manager -> head_of_departement) and
// must never equal the user's own ID.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Role         Role
	Department   string
	ManagerID    *string // nil for the top of the chain
	LeaveBalance decimal.Decimal // remaining days, NUMERIC to allow half days
	TotalLeaves  decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReportsTo reports whether the user's direct superior is managerID.
func (u *User) ReportsTo(managerID string) bool {
	return u.ManagerID != nil && *u.ManagerID == managerID
}
