// Package http wires the Fiber routes: the public login endpoint, the
// JWT-gated API groups and the per-route authorization gate.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soprahr/leavedesk-api/internal/application/authz"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Leaves        *LeaveHandler
	Users         *UserHandler
	Notifications *NotificationHandler
	Audit         *AuditHandler
	JWTSecret     string
}

// Register mounts all routes on the app. Everything under /api except
// /api/auth/login sits behind the JWT middleware; each route then passes the
// policy gate for its action.
func Register(app *fiber.App, h Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Post("/auth/login", h.Auth.Login)

	authed := api.Group("/", AuthMiddleware(h.JWTSecret))

	leaves := authed.Group("/leaves")
	leaves.Post("/", RequireAction(authz.ActionLeaveSubmit), h.Leaves.Submit)
	leaves.Get("/", RequireAction(authz.ActionLeaveListScoped), h.Leaves.ListScoped)
	leaves.Get("/my", RequireAction(authz.ActionLeaveListOwn), h.Leaves.ListMine)
	leaves.Get("/audit-logs", RequireAction(authz.ActionAuditView), h.Audit.Recent)
	leaves.Patch("/:id/review", RequireAction(authz.ActionLeaveReview), h.Leaves.Review)
	leaves.Post("/:id/attachments", RequireAction(authz.ActionLeaveAttach), h.Leaves.UploadAttachment)
	leaves.Get("/:id/pdf", RequireAction(authz.ActionLeavePDF), h.Leaves.SummaryPDF)

	users := authed.Group("/users")
	users.Get("/", RequireAction(authz.ActionDirectoryRead), h.Users.List)
	users.Get("/:id", RequireAction(authz.ActionDirectoryRead), h.Users.Get)
	users.Post("/", RequireAction(authz.ActionDirectoryWrite), h.Users.Create)
	users.Patch("/:id", RequireAction(authz.ActionDirectoryWrite), h.Users.Update)

	notifications := authed.Group("/notifications")
	notifications.Get("/", RequireAction(authz.ActionNotifications), h.Notifications.ListMine)
	notifications.Patch("/:id/read", RequireAction(authz.ActionNotifications), h.Notifications.MarkRead)
}
