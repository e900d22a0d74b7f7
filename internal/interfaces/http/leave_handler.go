package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/application/leave"
	"github.com/soprahr/leavedesk-api/internal/domain"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	"github.com/soprahr/leavedesk-api/pkg/logger"
)

// LeaveHandler handles the leave request workflow routes.
type LeaveHandler struct {
	uc  *leave.UseCase
	log *logger.Logger
}

// NewLeaveHandler builds the leave handler.
func NewLeaveHandler(uc *leave.UseCase, log *logger.Logger) *LeaveHandler {
	return &LeaveHandler{uc: uc, log: log}
}

// Submit godoc
// @Summary      Submit a leave request
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitLeaveRequest  true  "request"
// @Success      201   {object}  dto.LeaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/leaves [post]
func (h *LeaveHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid body", Code: "INVALID_BODY"})
	}
	out, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing required fields", Code: "VALIDATION"})
		case errors.Is(err, domain.ErrInvalidDateRange):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "startDate must not be after endDate", Code: "VALIDATION"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Employee not found", Code: "NOT_FOUND"})
		case errors.Is(err, domain.ErrNoManagerAssigned):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Employee has no manager assigned", Code: "VALIDATION"})
		case errors.Is(err, domain.ErrSelfReview):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Employee cannot be their own reviewer", Code: "VALIDATION"})
		}
		return h.internal(c, err, "submit leave request")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Review godoc
// @Summary      Approve or reject a pending leave request
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "leave request id"
// @Param        body  body  dto.ReviewLeaveRequest  true  "decision"
// @Success      200   {object}  dto.LeaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/leaves/{id}/review [patch]
func (h *LeaveHandler) Review(c *fiber.Ctx) error {
	var in dto.ReviewLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid body", Code: "INVALID_BODY"})
	}
	out, err := h.uc.Review(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid status", Code: "VALIDATION"})
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Leave request not found", Code: "NOT_FOUND"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Unauthorized to review this request", Code: "FORBIDDEN"})
		case errors.Is(err, domain.ErrAlreadyReviewed):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Leave request already reviewed", Code: "CONFLICT"})
		case errors.Is(err, domain.ErrInsufficientLeave):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Insufficient leave balance", Code: "CONFLICT"})
		}
		return h.internal(c, err, "review leave request")
	}
	return c.JSON(out)
}

// ListScoped godoc
// @Summary      List leave requests visible to the caller's role
// @Tags         leaves
// @Produce      json
// @Success      200  {array}  dto.LeaveResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/leaves [get]
func (h *LeaveHandler) ListScoped(c *fiber.Ctx) error {
	out, err := h.uc.ListScoped(c.Context(), GetUserID(c), entity.Role(GetRole(c)))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Access denied", Code: "FORBIDDEN"})
		}
		return h.internal(c, err, "list scoped leave requests")
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      List the caller's own leave requests
// @Tags         leaves
// @Produce      json
// @Success      200  {array}  dto.LeaveResponse
// @Security     BearerAuth
// @Router       /api/leaves/my [get]
func (h *LeaveHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), GetUserID(c))
	if err != nil {
		return h.internal(c, err, "list own leave requests")
	}
	return c.JSON(out)
}

// UploadAttachment godoc
// @Summary      Attach a supporting file to a leave request
// @Tags         leaves
// @Accept       mpfd
// @Produce      json
// @Param        id    path      string  true  "leave request id"
// @Param        file  formData  file    true  "attachment"
// @Success      201   {object}  dto.UploadAttachmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/leaves/{id}/attachments [post]
func (h *LeaveHandler) UploadAttachment(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No file uploaded", Code: "VALIDATION"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No file uploaded", Code: "VALIDATION"})
	}
	defer f.Close()

	out, err := h.uc.UploadAttachment(c.Context(), GetUserID(c), c.Params("id"), fh.Filename, f)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Leave request not found", Code: "NOT_FOUND"})
		}
		return h.internal(c, err, "upload attachment")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SummaryPDF godoc
// @Summary      Download the printable summary of a leave request
// @Tags         leaves
// @Produce      application/pdf
// @Param        id  path  string  true  "leave request id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/leaves/{id}/pdf [get]
func (h *LeaveHandler) SummaryPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.uc.SummaryPDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Leave request not found", Code: "NOT_FOUND"})
		}
		return h.internal(c, err, "generate leave summary pdf")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="leave-%s.pdf"`, id))
	return c.Send(pdfBytes)
}

func (h *LeaveHandler) internal(c *fiber.Ctx, err error, op string) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg(op + " failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal error", Code: "INTERNAL"})
}
