package repository

import (
	"context"

	"github.com/soprahr/leavedesk-api/internal/domain/entity"
)

// NotificationRepository is the persistence port for per-user notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Notification, error)
	// MarkRead flips read for the notification if it belongs to userID.
	// Returns domain.ErrNotFound when no matching row exists.
	MarkRead(ctx context.Context, id, userID string) error
}
