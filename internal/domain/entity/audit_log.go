package entity

import "time"

// Audit action tags.
const (
	AuditSubmitLeave      = "submit_leave"
	AuditReviewApproved   = "review_leave_approved"
	AuditReviewRejected   = "review_leave_rejected"
	AuditUploadAttachment = "upload_attachment"
)

// AuditLogEntry is an append-only record of a significant action. Never
// mutated or deleted.
type AuditLogEntry struct {
	ID        string
	UserID    string // actor
	Action    string
	TargetID  string
	Details   string
	CreatedAt time.Time

	// ActorName and ActorEmail are populated by the actor join on reads.
	ActorName  string
	ActorEmail string
}
