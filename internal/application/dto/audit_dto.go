package dto

import "time"

// AuditLogResponse is one audit trail entry joined with the acting user.
type AuditLogResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ActorName  string    `json:"actorName,omitempty"`
	ActorEmail string    `json:"actorEmail,omitempty"`
	Action     string    `json:"action"`
	TargetID   string    `json:"targetId"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
