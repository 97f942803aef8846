package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kinsha-retail/kinsha_shop/internal/catalog"
)

// RegisterCatalogRoutes wires the public catalog endpoints.
func RegisterCatalogRoutes(r fiber.Router, h *catalog.Handler) {
	r.Post("/addproduct", h.Add)
	r.Post("/removeproduct", h.Remove)
	r.Get("/allproduct", h.All)
	r.Get("/newcollections", h.NewCollections)
	r.Get("/popular", h.Popular)
}
