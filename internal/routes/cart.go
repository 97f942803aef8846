package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kinsha-retail/kinsha_shop/internal/cart"
)

// RegisterCartRoutes wires cart endpoints behind the auth-token gate. Catalog
// and signup/login routes stay outside it.
func RegisterCartRoutes(r fiber.Router, h *cart.Handler, gate fiber.Handler) {
	r.Post("/addtocart", gate, h.Add)
	r.Get("/cart", gate, h.Get)
}
