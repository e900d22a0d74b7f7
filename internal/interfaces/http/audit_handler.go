package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soprahr/leavedesk-api/internal/application/audit"
	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/pkg/logger"
)

// AuditHandler exposes the audit trail read.
type AuditHandler struct {
	recorder *audit.Recorder
	log      *logger.Logger
}

// NewAuditHandler builds the audit handler.
func NewAuditHandler(recorder *audit.Recorder, log *logger.Logger) *AuditHandler {
	return &AuditHandler{recorder: recorder, log: log}
}

// Recent godoc
// @Summary      List the 100 most recent audit entries
// @Tags         audit
// @Produce      json
// @Success      200  {array}  dto.AuditLogResponse
// @Security     BearerAuth
// @Router       /api/leaves/audit-logs [get]
func (h *AuditHandler) Recent(c *fiber.Ctx) error {
	out, err := h.recorder.RecentEntries(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("list audit entries failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal error", Code: "INTERNAL"})
	}
	return c.JSON(out)
}
