package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soprahr/leavedesk-api/internal/application/directory"
	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain"
	"github.com/soprahr/leavedesk-api/pkg/logger"
)

// UserHandler handles the admin user directory routes.
type UserHandler struct {
	uc  *directory.UseCase
	log *logger.Logger
}

// NewUserHandler builds the directory handler.
func NewUserHandler(uc *directory.UseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List godoc
// @Summary      List directory users
// @Tags         users
// @Produce      json
// @Param        limit   query  int  false  "page size (default 20)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  dto.UserResponse
// @Security     BearerAuth
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid query", Code: "VALIDATION"})
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return h.internal(c, err, "list users")
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get one directory user
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "user id"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "User not found", Code: "NOT_FOUND"})
		}
		return h.internal(c, err, "get user")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Onboard a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "user"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid body", Code: "INVALID_BODY"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing required fields", Code: "VALIDATION"})
		case errors.Is(err, domain.ErrSelfReview):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "User cannot be their own manager", Code: "VALIDATION"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Manager not found", Code: "VALIDATION"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Email already exists", Code: "CONFLICT"})
		}
		return h.internal(c, err, "create user")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update a directory user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "user id"
// @Param        body  body  dto.UpdateUserRequest  true  "fields to change"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid body", Code: "INVALID_BODY"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "User not found", Code: "NOT_FOUND"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid role", Code: "VALIDATION"})
		case errors.Is(err, domain.ErrSelfReview):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "User cannot be their own manager", Code: "VALIDATION"})
		}
		return h.internal(c, err, "update user")
	}
	return c.JSON(out)
}

func (h *UserHandler) internal(c *fiber.Ctx, err error, op string) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg(op + " failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal error", Code: "INTERNAL"})
}
