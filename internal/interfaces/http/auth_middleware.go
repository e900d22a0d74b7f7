package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/soprahr/leavedesk-api/internal/application/authz"
	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	"github.com/soprahr/leavedesk-api/pkg/jwt"
)

// Locals keys for the authenticated caller.
const (
	LocalUserID   = "user_id"
	LocalRole     = "role"
	LocalUserName = "user_name"
)

// AuthMiddleware validates the Bearer JWT and stores the caller's id, role
// and name in c.Locals. A missing token is 401; a bad or expired one is 403.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Missing token", Code: "MISSING_TOKEN"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Missing token", Code: "MISSING_TOKEN"})
		}
		userID, role, name, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Invalid token", Code: "INVALID_TOKEN"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		c.Locals(LocalUserName, name)
		return c.Next()
	}
}

// RequireAction authorizes the caller's role against the policy table for one
// action. Must run after AuthMiddleware.
func RequireAction(action authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := entity.Role(GetRole(c))
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Missing role claim", Code: "MISSING_ROLE"})
		}
		if !authz.Allowed(role, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Access denied", Code: "FORBIDDEN"})
		}
		return c.Next()
	}
}

// GetUserID returns the caller's user ID (after AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetRole returns the caller's role claim (after AuthMiddleware).
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetUserName returns the caller's display name claim (after AuthMiddleware).
func GetUserName(c *fiber.Ctx) string {
	return localString(c, LocalUserName)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
