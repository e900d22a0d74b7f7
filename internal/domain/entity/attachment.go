package entity

import "time"

// Attachment is a supporting file for a leave request. The file itself is
// stored out-of-band; only the resulting URL is persisted. Immutable after
// creation.
type Attachment struct {
	ID             string
	LeaveRequestID string
	FileURL        string
	UploadedAt     time.Time
}
