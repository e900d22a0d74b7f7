package notification

import (
	"context"

	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain/repository"
)

// UseCase exposes a user's own notifications.
type UseCase struct {
	notifs repository.NotificationRepository
}

// NewUseCase builds the notification use case.
func NewUseCase(notifs repository.NotificationRepository) *UseCase {
	return &UseCase{notifs: notifs}
}

// ListMine returns the caller's notifications, newest first.
func (uc *UseCase) ListMine(ctx context.Context, userID string) ([]dto.NotificationResponse, error) {
	list, err := uc.notifs.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead flips read on one of the caller's notifications. Someone else's
// notification looks like a missing one (ErrNotFound).
func (uc *UseCase) MarkRead(ctx context.Context, id, userID string) error {
	return uc.notifs.MarkRead(ctx, id, userID)
}
