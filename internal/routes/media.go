package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kinsha-retail/kinsha_shop/internal/media"
)

// RegisterMediaRoutes wires the upload endpoint and, for the local backend,
// serves the uploaded files under /images.
func RegisterMediaRoutes(app *fiber.App, h *media.Handler, store media.Storage) {
	app.Post("/upload", h.Upload)

	if local, ok := store.(*media.LocalStorage); ok {
		app.Static("/images", local.Dir())
	}
}
