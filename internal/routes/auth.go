package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kinsha-retail/kinsha_shop/internal/auth"
)

// RegisterAuthRoutes wires signup and login, both rate limited per email.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	if rateLimiter != nil {
		r.Post("/signup", rateLimiter, h.Signup)
		r.Post("/login", rateLimiter, h.Login)
		return
	}
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
}
