package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/signup", h.Signup)
	app.Post("/login", h.Login)
	app.Post("/verify-2fa", h.Verify2FA)
	app.Post("/verify-token", h.VerifyToken)
	app.Post("/logout", h.Logout)
}
