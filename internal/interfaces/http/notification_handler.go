package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/application/notification"
	"github.com/soprahr/leavedesk-api/internal/domain"
	"github.com/soprahr/leavedesk-api/pkg/logger"
)

// NotificationHandler handles a user's own notification routes.
type NotificationHandler struct {
	uc  *notification.UseCase
	log *logger.Logger
}

// NewNotificationHandler builds the notification handler.
func NewNotificationHandler(uc *notification.UseCase, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, log: log}
}

// ListMine godoc
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Security     BearerAuth
// @Router       /api/notifications [get]
func (h *NotificationHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), GetUserID(c))
	if err != nil {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("list notifications failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal error", Code: "INTERNAL"})
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Mark one of the caller's notifications as read
// @Tags         notifications
// @Produce      json
// @Param        id  path  string  true  "notification id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Notification not found", Code: "NOT_FOUND"})
		}
		h.log.Error().Err(err).Str("path", c.Path()).Msg("mark notification read failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal error", Code: "INTERNAL"})
	}
	return c.JSON(dto.MessageResponse{Message: "Notification marked as read"})
}
