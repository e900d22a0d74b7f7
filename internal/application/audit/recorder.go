// Package audit writes the audit trail and user notifications that accompany
// each significant workflow action.
//
// Record and Notify are post-write hooks: they run after the primary write
// has succeeded, best-effort. A failure here is logged and swallowed, never
// rolled back into the triggering operation. That eventual-consistency gap is
// deliberate and covered by tests.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	"github.com/soprahr/leavedesk-api/internal/domain/repository"
	"github.com/soprahr/leavedesk-api/pkg/logger"
)

// Recorder appends audit entries and notifications.
type Recorder struct {
	audits repository.AuditLogRepository
	notifs repository.NotificationRepository
	log    *logger.Logger
}

// NewRecorder builds the recorder.
func NewRecorder(audits repository.AuditLogRepository, notifs repository.NotificationRepository, log *logger.Logger) *Recorder {
	return &Recorder{audits: audits, notifs: notifs, log: log}
}

// Record appends one audit entry for an actor's action on targetID.
func (r *Recorder) Record(ctx context.Context, actorID, action, targetID, details string) {
	entry := &entity.AuditLogEntry{
		ID:        uuid.New().String(),
		UserID:    actorID,
		Action:    action,
		TargetID:  targetID,
		Details:   details,
		CreatedAt: time.Now(),
	}
	if err := r.audits.Create(ctx, entry); err != nil {
		r.log.Warn().Err(err).
			Str("action", action).
			Str("target_id", targetID).
			Msg("audit write failed, entry dropped")
	}
}

// Notify appends a notification message for a recipient.
func (r *Recorder) Notify(ctx context.Context, userID, message string) {
	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := r.notifs.Create(ctx, n); err != nil {
		r.log.Warn().Err(err).
			Str("user_id", userID).
			Msg("notification write failed, message dropped")
	}
}

// recentLimit caps the audit retrieval page.
const recentLimit = 100

// RecentEntries returns the most recent 100 audit entries, newest first,
// joined with the acting user's identity.
func (r *Recorder) RecentEntries(ctx context.Context) ([]dto.AuditLogResponse, error) {
	entries, err := r.audits.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditLogResponse{
			ID:         e.ID,
			UserID:     e.UserID,
			ActorName:  e.ActorName,
			ActorEmail: e.ActorEmail,
			Action:     e.Action,
			TargetID:   e.TargetID,
			Details:    e.Details,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out, nil
}
